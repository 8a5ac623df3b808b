package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// UserRepository covers the directory side of user records: listing and
// profile/role mutation. Credential lookups live on AuthRepository.
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
