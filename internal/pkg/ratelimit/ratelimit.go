// internal/pkg/ratelimit/ratelimit.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter implements fixed-window request counting on Redis. A nil client
// disables limiting entirely, so the service can run without Redis.
type Limiter struct {
	client *redis.Client
}

func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{client: client}
}

// Allow increments the counter for key and reports whether the request
// fits inside the window. Redis errors fail open: a broken limiter must
// not take the API down with it.
func (l *Limiter) Allow(ctx context.Context, key string, max int64, window time.Duration) (bool, error) {
	if l.client == nil {
		return true, nil
	}

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return true, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// Start the window on the first hit
	if count == 1 {
		l.client.Expire(ctx, key, window)
	}

	return count <= max, nil
}

// AllowLogin applies the per IP+email login window (10 requests / 15 minutes).
// Coarser than the account lockout; this only sheds abusive traffic.
func (l *Limiter) AllowLogin(ctx context.Context, ip, email string) (bool, error) {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)
	return l.Allow(ctx, key, 10, 15*time.Minute)
}

// AllowContact applies the contact-form submission window per IP.
func (l *Limiter) AllowContact(ctx context.Context, ip string) (bool, error) {
	key := fmt.Sprintf("ratelimit:contact:%s", ip)
	return l.Allow(ctx, key, 5, time.Hour)
}

// Reset clears the counter for key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	if l.client == nil {
		return nil
	}
	return l.client.Del(ctx, key).Err()
}
