// internal/domain/settings/entity.go
package settings

import "time"

// Settings is the singleton site configuration row.
type Settings struct {
	ID                 int64     `json:"id" db:"id"`
	SiteName           string    `json:"siteName" db:"site_name"`
	SiteDescription    string    `json:"siteDescription" db:"site_description"`
	Logo               string    `json:"logo" db:"logo"`
	Favicon            string    `json:"favicon" db:"favicon"`
	PrimaryColor       string    `json:"primaryColor" db:"primary_color"`
	SecondaryColor     string    `json:"secondaryColor" db:"secondary_color"`
	AccentColor        string    `json:"accentColor" db:"accent_color"`
	DefaultTheme       string    `json:"defaultTheme" db:"default_theme"` // light, dark, system
	EnableBlog         bool      `json:"enableBlog" db:"enable_blog"`
	EnableTestimonials bool      `json:"enableTestimonials" db:"enable_testimonials"`
	MaintenanceMode    bool      `json:"maintenanceMode" db:"maintenance_mode"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}
