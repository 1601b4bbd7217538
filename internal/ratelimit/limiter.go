// Package ratelimit throttles admin login attempts per client.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

type Storage interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

type Limiter struct {
	storage Storage
	limit   int64
	window  time.Duration
	now     func() time.Time
}

type CheckResult struct {
	Allowed   bool  `json:"allowed"`
	Remaining int64 `json:"remaining"`
	ResetAt   int64 `json:"resetAt"`
	Limit     int64 `json:"limit"`
}

func NewLimiter(storage Storage, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		storage: storage,
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Check counts one attempt by clientID for action.
func (l *Limiter) Check(ctx context.Context, clientID, action string) (*CheckResult, error) {
	key := fmt.Sprintf("flipword:rate:%s:%s", action, clientID)

	count, err := l.storage.Incr(ctx, key, l.window)
	if err != nil {
		return nil, fmt.Errorf("failed to increment counter: %w", err)
	}

	ttl, err := l.storage.TTL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get TTL: %w", err)
	}
	if ttl < 0 {
		ttl = l.window
	}

	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &CheckResult{
		Allowed:   count <= l.limit,
		Remaining: remaining,
		ResetAt:   l.now().Add(ttl).Unix(),
		Limit:     l.limit,
	}, nil
}
