// internal/domain/project/dto.go
package project

import "time"

// CreateRequest for adding a project
type CreateRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	LongDescription string     `json:"longDescription"`
	Image           string     `json:"image"`
	Images          []string   `json:"images"`
	Technologies    []string   `json:"technologies"`
	Category        string     `json:"category"`
	LiveURL         string     `json:"liveUrl"`
	GithubURL       string     `json:"githubUrl"`
	Featured        bool       `json:"featured"`
	Order           int        `json:"order"`
	IsVisible       *bool      `json:"isVisible"`
	CompletedDate   *time.Time `json:"completedDate"`
}

// UpdateRequest carries a partial project update; nil fields are untouched.
type UpdateRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	LongDescription *string    `json:"longDescription"`
	Image           *string    `json:"image"`
	Images          *[]string  `json:"images"`
	Technologies    *[]string  `json:"technologies"`
	Category        *string    `json:"category"`
	LiveURL         *string    `json:"liveUrl"`
	GithubURL       *string    `json:"githubUrl"`
	Featured        *bool      `json:"featured"`
	Order           *int       `json:"order"`
	IsVisible       *bool      `json:"isVisible"`
	CompletedDate   *time.Time `json:"completedDate"`
}
