// internal/domain/contact/entity.go
package contact

import (
	"database/sql"
	"time"
)

// Contact is one message submitted through the public contact form.
type Contact struct {
	ID        int64        `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Email     string       `json:"email" db:"email"`
	Phone     string       `json:"phone" db:"phone"`
	Subject   string       `json:"subject" db:"subject"`
	Message   string       `json:"message" db:"message"`
	IsRead    bool         `json:"isRead" db:"is_read"`
	RepliedAt sql.NullTime `json:"repliedAt" db:"replied_at"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time    `json:"updatedAt" db:"updated_at"`
}
