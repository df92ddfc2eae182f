// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"portfolio-service/internal/pkg/jwt"
)

type AppConfig struct {
	// Server
	HTTPAddr  string
	RedisAddr string
	RedisPass string

	// JWT
	JWT jwt.Config

	// Auth policy
	ResetSecretCode  string
	LockoutThreshold int
	LockoutDuration  time.Duration
}

// Load reads environment variables into AppConfig. The signing secret and
// the password-reset code have no fallback values: running without them is
// a misconfiguration, not a degraded mode.
func Load() (AppConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return AppConfig{}, fmt.Errorf("JWT_SECRET is not set")
	}

	resetCode := os.Getenv("PASSWORD_RESET_SECRET")
	if resetCode == "" {
		return AppConfig{}, fmt.Errorf("PASSWORD_RESET_SECRET is not set")
	}

	return AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8000"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASS", ""),

		JWT: jwt.Config{
			Secret:   secret,
			Issuer:   "portfolio-api",
			Audience: "portfolio-admin",
			TTL:      7 * 24 * time.Hour,
		},

		ResetSecretCode:  resetCode,
		LockoutThreshold: getEnvInt("LOCKOUT_THRESHOLD", 5),
		LockoutDuration:  getEnvDuration("LOCKOUT_DURATION", 15*time.Minute),
	}, nil
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
