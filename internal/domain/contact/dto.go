// internal/domain/contact/dto.go
package contact

// SubmitRequest is the public contact-form payload.
type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
