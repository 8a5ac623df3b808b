package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBlocked        = errors.New("user not found or blocked")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// User models an account in the roster system. Users are never hard-deleted;
// deactivation flips IsActive and the authentication gate rejects the account
// on its next request.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	RoleID       int64     `json:"role_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	Role         *Role     `json:"role,omitempty"`
}

// Identity is the request-scoped view of the authenticated caller. It is
// derived from a verified token plus a fresh store lookup and lives only for
// the duration of one request.
type Identity struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	RoleCode string `json:"role_code"`
	RoleName string `json:"role_name"`
}
