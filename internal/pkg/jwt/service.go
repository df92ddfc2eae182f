// internal/pkg/jwt/service.go
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// Config holds signing parameters for the token service.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Service issues and verifies HS256 bearer tokens.
type Service struct {
	secret   []byte
	issuer   string
	audience string
	TTL      time.Duration
}

// NewService builds a token service. An empty secret is a configuration
// error and is rejected outright rather than silently falling back.
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: signing secret is not configured")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		TTL:      ttl,
	}, nil
}

// Issue creates a signed token carrying the admin identity and the
// revocation epoch current at issuance time.
func (s *Service) Issue(adminID int64, email string, tokenVersion int) (string, error) {
	now := time.Now()

	claims := &Claims{
		AdminID:      adminID,
		Email:        email,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   fmt.Sprintf("%d", adminID),
			Audience:  []string{s.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        ulid.Make().String(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify validates signature and standard claims, returning the parsed
// claims. Malformed, badly signed, and expired tokens all fail here;
// structural validity alone does not authorize a request.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, fmt.Errorf("invalid issuer: expected %s, got %s", s.issuer, claims.Issuer)
	}

	return claims, nil
}
