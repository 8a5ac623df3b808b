package ports

import (
	"time"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// TokenClaims is the identity snapshot embedded in a signed token at issuance
// time. Role changes made after issuance are not reflected here; the gate
// re-resolves the user from the store instead of trusting RoleID.
type TokenClaims struct {
	UserID    int64
	Email     string
	RoleID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and verifies signed identity tokens.
type TokenCodec interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}
