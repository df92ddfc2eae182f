// internal/domain/profile/entity.go
package profile

import "time"

// Profile is the single public identity card of the portfolio owner.
type Profile struct {
	ID           int64             `json:"id" db:"id"`
	Name         string            `json:"name" db:"name"`
	FullName     string            `json:"fullName" db:"full_name"`
	Title        string            `json:"title" db:"title"`
	Tagline      string            `json:"tagline" db:"tagline"`
	Bio          string            `json:"bio" db:"bio"`
	About        string            `json:"about" db:"about"`
	Email        string            `json:"email" db:"email"`
	Phone        string            `json:"phone" db:"phone"`
	Address      string            `json:"address" db:"address"`
	ProfileImage string            `json:"profileImage" db:"profile_image"`
	ResumeURL    string            `json:"resumeUrl" db:"resume_url"`
	Socials      map[string]string `json:"socials" db:"socials"`
	CreatedAt    time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time         `json:"updatedAt" db:"updated_at"`
}
