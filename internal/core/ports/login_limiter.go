package ports

import "context"

// LoginLimiter throttles repeated failed logins per account.
type LoginLimiter interface {
	// TooMany reports whether the account has exhausted its attempt budget.
	TooMany(ctx context.Context, email string) (bool, error)
	// Fail records one failed attempt.
	Fail(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
