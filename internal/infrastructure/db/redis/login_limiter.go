package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/icehawks/roster-system/internal/core/ports"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// LoginLimiter counts failed logins per account in Redis.
// Key format: login:fail:<email>, expiring after the window.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter creates a limiter wrapping the given Redis client.
// Non-positive arguments fall back to 5 attempts per 15 minutes.
func NewLoginLimiter(client *redis.Client, maxAttempts int64, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// TooMany reports whether the account has exhausted its attempt budget.
func (l *LoginLimiter) TooMany(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// Fail records one failed attempt. The expiry refreshes on every failure so
// the counter only decays after a quiet window.
func (l *LoginLimiter) Fail(ctx context.Context, email string) error {
	key := l.key(email)
	if err := l.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("limiter incr: %w", err)
	}
	return l.client.Expire(ctx, key, l.window).Err()
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login:fail:" + email
}

var _ ports.LoginLimiter = (*LoginLimiter)(nil)
