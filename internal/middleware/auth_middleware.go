// internal/middleware/auth_middleware.go
package middleware

import (
	"context"
	"strings"

	"portfolio-service/internal/domain/admin"
	"portfolio-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	CtxAdminID    = "admin_id"
	CtxAdminEmail = "admin_email"
	CtxAdminName  = "admin_name"
	CtxTokenHash  = "token_hash"
)

// authenticator is the gate AuthMiddleware delegates to.
type authenticator interface {
	Authenticate(ctx context.Context, token string) (*admin.Admin, string, error)
}

// AuthMiddleware guards admin routes. It extracts the bearer token,
// runs the full gate (signature, live session, revocation epoch) and
// stores the caller's identity on the request context.
func AuthMiddleware(auth authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "Missing or malformed authorization header")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		a, tokenHash, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(CtxAdminID, a.ID)
		c.Set(CtxAdminEmail, a.Email)
		c.Set(CtxAdminName, a.Name)
		c.Set(CtxTokenHash, tokenHash)

		c.Next()
	}
}
