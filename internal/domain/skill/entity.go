// internal/domain/skill/entity.go
package skill

import "time"

// Skill is one entry of the skills grid.
type Skill struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Proficiency int       `json:"proficiency" db:"proficiency"`
	Icon        string    `json:"icon" db:"icon"`
	Order       int       `json:"order" db:"sort_order"`
	IsVisible   bool      `json:"isVisible" db:"is_visible"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
