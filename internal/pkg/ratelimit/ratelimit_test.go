// internal/pkg/ratelimit/ratelimit_test.go
package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNilClientAllowsEverything(t *testing.T) {
	l := NewLimiter(nil)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		allowed, err := l.Allow(ctx, "key", 1, time.Minute)
		if err != nil {
			t.Fatalf("Allow: %v", err)
		}
		if !allowed {
			t.Fatal("nil-client limiter must always allow")
		}
	}

	if allowed, _ := l.AllowLogin(ctx, "1.2.3.4", "a@b.c"); !allowed {
		t.Fatal("AllowLogin must allow without Redis")
	}
	if allowed, _ := l.AllowContact(ctx, "1.2.3.4"); !allowed {
		t.Fatal("AllowContact must allow without Redis")
	}
	if err := l.Reset(ctx, "key"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
}
