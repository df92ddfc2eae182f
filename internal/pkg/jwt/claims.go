// internal/pkg/jwt/claims.go
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by an admin bearer token.
// TokenVersion is the revocation epoch embedded at issuance time; tokens
// whose embedded version no longer matches the admin row are stale.
type Claims struct {
	AdminID      int64  `json:"admin_id"`
	Email        string `json:"email"`
	TokenVersion int    `json:"token_version"`
	jwt.RegisteredClaims
}
