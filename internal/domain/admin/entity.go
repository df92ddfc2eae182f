// internal/domain/admin/entity.go
package admin

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"portfolio-service/internal/pkg/deviceinfo"
)

// Admin is the identity record behind the authentication gate.
// TokenVersion is the revocation epoch: bumping it invalidates every token
// issued before the bump, whatever its remaining lifetime.
type Admin struct {
	ID            int64        `json:"id" db:"id"`
	Email         string       `json:"email" db:"email"`
	PasswordHash  string       `json:"-" db:"password"`
	Name          string       `json:"name" db:"name"`
	Role          string       `json:"role" db:"role"`
	LoginAttempts int          `json:"-" db:"login_attempts"`
	LockUntil     sql.NullTime `json:"-" db:"lock_until"`
	LastLogin     sql.NullTime `json:"lastLogin" db:"last_login"`
	TokenVersion  int          `json:"-" db:"token_version"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time    `json:"updatedAt" db:"updated_at"`
}

// Session is the durable record of one issued bearer token, identified by
// the SHA-256 hash of the token. The raw token is never persisted.
type Session struct {
	ID         uuid.UUID             `json:"id" db:"id"`
	AdminID    int64                 `json:"-" db:"admin_id"`
	TokenHash  string                `json:"-" db:"token_hash"`
	IPAddress  string                `json:"ipAddress" db:"ip_address"`
	UserAgent  string                `json:"userAgent" db:"user_agent"`
	DeviceInfo deviceinfo.DeviceInfo `json:"deviceInfo" db:"device_info"`
	CreatedAt  time.Time             `json:"createdAt" db:"created_at"`
	ExpiresAt  time.Time             `json:"expiresAt" db:"expires_at"`
}
