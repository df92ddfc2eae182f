// internal/domain/admin/dto.go
package admin

import "time"

// RegisterRequest for admin registration
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginRequest for admin login
type LoginRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// ChangePasswordRequest for password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ResetPasswordRequest for the secret-code recovery path
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	SecretCode  string `json:"secretCode" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// PublicInfo is the admin shape exposed to clients.
type PublicInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse successful register/login response
type AuthResponse struct {
	Token string     `json:"token"`
	Admin PublicInfo `json:"admin"`
}

// SessionView is one row of the session listing, annotated with whether it
// belongs to the caller's own token.
type SessionView struct {
	Session
	IsCurrent bool `json:"isCurrent"`
}

// LockedResponse is the 403 payload for an active lockout window.
type LockedResponse struct {
	LockUntil         time.Time `json:"lockUntil"`
	RetryAfterSeconds int       `json:"retryAfterSeconds"`
}

// PublicInfoOf builds the client-facing view of an admin row.
func PublicInfoOf(a *Admin) PublicInfo {
	return PublicInfo{ID: a.ID, Email: a.Email, Name: a.Name}
}
