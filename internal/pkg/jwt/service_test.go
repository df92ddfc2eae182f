package jwt

import (
	"strings"
	"testing"
	"time"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	svc, err := NewService(Config{
		Secret:   "test-secret-key",
		Issuer:   "portfolio-api",
		Audience: "portfolio-admin",
		TTL:      ttl,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewServiceRequiresSecret(t *testing.T) {
	if _, err := NewService(Config{Issuer: "portfolio-api"}); err == nil {
		t.Fatal("expected error for empty secret, got nil")
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := newTestService(t, time.Hour)

	token, err := svc.Issue(42, "admin@example.com", 3)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.AdminID != 42 {
		t.Errorf("AdminID = %d, want 42", claims.AdminID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email = %q, want admin@example.com", claims.Email)
	}
	if claims.TokenVersion != 3 {
		t.Errorf("TokenVersion = %d, want 3", claims.TokenVersion)
	}
	if claims.ID == "" {
		t.Error("expected non-empty jti")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := newTestService(t, -time.Minute)

	token, err := svc.Issue(1, "admin@example.com", 0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	svc := newTestService(t, time.Hour)
	other := newTestService(t, time.Hour)
	other.secret = []byte("different-secret")

	token, err := other.Issue(1, "admin@example.com", 0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatal("expected error for token signed with different secret, got nil")
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	svc := newTestService(t, time.Hour)

	for _, tok := range []string{"", "garbage", "a.b", strings.Repeat("x", 200)} {
		if _, err := svc.Verify(tok); err == nil {
			t.Errorf("Verify(%q): expected error, got nil", tok)
		}
	}
}
