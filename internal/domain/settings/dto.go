// internal/domain/settings/dto.go
package settings

// UpdateRequest carries a partial settings update; nil fields are untouched.
type UpdateRequest struct {
	SiteName           *string `json:"siteName"`
	SiteDescription    *string `json:"siteDescription"`
	Logo               *string `json:"logo"`
	Favicon            *string `json:"favicon"`
	PrimaryColor       *string `json:"primaryColor"`
	SecondaryColor     *string `json:"secondaryColor"`
	AccentColor        *string `json:"accentColor"`
	DefaultTheme       *string `json:"defaultTheme"`
	EnableBlog         *bool   `json:"enableBlog"`
	EnableTestimonials *bool   `json:"enableTestimonials"`
	MaintenanceMode    *bool   `json:"maintenanceMode"`
}
