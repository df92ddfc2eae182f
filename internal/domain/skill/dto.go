// internal/domain/skill/dto.go
package skill

// CreateRequest for adding a skill
type CreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency" binding:"min=0,max=100"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
	IsVisible   *bool  `json:"isVisible"`
}

// UpdateRequest carries a partial skill update; nil fields are untouched.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Proficiency *int    `json:"proficiency"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
	IsVisible   *bool   `json:"isVisible"`
}
