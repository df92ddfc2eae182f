// internal/domain/project/entity.go
package project

import "time"

// Project is one portfolio project card.
type Project struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	LongDescription string    `json:"longDescription" db:"long_description"`
	Image           string    `json:"image" db:"image"`
	Images          []string  `json:"images" db:"images"`
	Technologies    []string  `json:"technologies" db:"technologies"`
	Category        string    `json:"category" db:"category"` // web, mobile, desktop, api, other
	LiveURL         string    `json:"liveUrl" db:"live_url"`
	GithubURL       string    `json:"githubUrl" db:"github_url"`
	Featured        bool      `json:"featured" db:"featured"`
	Order           int       `json:"order" db:"sort_order"`
	IsVisible       bool      `json:"isVisible" db:"is_visible"`
	Views           int       `json:"views" db:"views"`
	CompletedDate   time.Time `json:"completedDate" db:"completed_date"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
