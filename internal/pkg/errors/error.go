package xerrors

import (
	"errors"
	"fmt"
	"time"
)

// Common reusable application errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict: resource already exists")
	ErrInternal           = errors.New("internal server error")
	ErrRateLimited        = errors.New("too many requests")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token is not valid")
	ErrSessionRevoked     = errors.New("session expired or revoked")
	ErrInvalidSecretCode  = errors.New("invalid secret code")
)

// LockedError is returned when a login attempt hits an active lockout window.
type LockedError struct {
	Until time.Time
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account locked, try again in %d seconds", e.RetryAfterSeconds())
}

// RetryAfterSeconds reports the remaining lock time, rounded up, never below 1.
func (e *LockedError) RetryAfterSeconds() int {
	secs := int(time.Until(e.Until).Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return secs
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// AsLocked extracts a LockedError from an error chain, if present.
func AsLocked(err error) (*LockedError, bool) {
	var locked *LockedError
	if errors.As(err, &locked) {
		return locked, true
	}
	return nil, false
}
