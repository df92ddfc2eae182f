// internal/domain/profile/dto.go
package profile

// UpdateRequest carries a partial profile update. Nil means "leave the
// column alone"; only set fields reach the store.
type UpdateRequest struct {
	Name         *string            `json:"name"`
	FullName     *string            `json:"fullName"`
	Title        *string            `json:"title"`
	Tagline      *string            `json:"tagline"`
	Bio          *string            `json:"bio"`
	About        *string            `json:"about"`
	Email        *string            `json:"email"`
	Phone        *string            `json:"phone"`
	Address      *string            `json:"address"`
	ProfileImage *string            `json:"profileImage"`
	ResumeURL    *string            `json:"resumeUrl"`
	Socials      *map[string]string `json:"socials"`
}
