package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// AuthRepository defines the interface for credential persistence. Lookups
// return the user with the Role relation populated so callers never need a
// second round trip.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
