// internal/config/config_test.go
package config

import (
	"testing"
	"time"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PASSWORD_RESET_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}

	t.Setenv("JWT_SECRET", "the-signing-secret")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when PASSWORD_RESET_SECRET is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "the-signing-secret")
	t.Setenv("PASSWORD_RESET_SECRET", "the-reset-code")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOCKOUT_THRESHOLD", "")
	t.Setenv("LOCKOUT_DURATION", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPAddr != ":8000" {
		t.Errorf("HTTPAddr = %q, want :8000", cfg.HTTPAddr)
	}
	if cfg.LockoutThreshold != 5 {
		t.Errorf("LockoutThreshold = %d, want 5", cfg.LockoutThreshold)
	}
	if cfg.LockoutDuration != 15*time.Minute {
		t.Errorf("LockoutDuration = %v, want 15m", cfg.LockoutDuration)
	}
	if cfg.JWT.TTL != 7*24*time.Hour {
		t.Errorf("JWT TTL = %v, want 168h", cfg.JWT.TTL)
	}
	if cfg.JWT.Secret != "the-signing-secret" {
		t.Errorf("JWT secret not carried through")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PASSWORD_RESET_SECRET", "r")
	t.Setenv("LOCKOUT_THRESHOLD", "3")
	t.Setenv("LOCKOUT_DURATION", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LockoutThreshold != 3 {
		t.Errorf("LockoutThreshold = %d, want 3", cfg.LockoutThreshold)
	}
	if cfg.LockoutDuration != 30*time.Minute {
		t.Errorf("LockoutDuration = %v, want 30m", cfg.LockoutDuration)
	}
}

func TestLoadIgnoresInvalidOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PASSWORD_RESET_SECRET", "r")
	t.Setenv("LOCKOUT_THRESHOLD", "-2")
	t.Setenv("LOCKOUT_DURATION", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LockoutThreshold != 5 {
		t.Errorf("LockoutThreshold = %d, want fallback 5", cfg.LockoutThreshold)
	}
	if cfg.LockoutDuration != 15*time.Minute {
		t.Errorf("LockoutDuration = %v, want fallback 15m", cfg.LockoutDuration)
	}
}
