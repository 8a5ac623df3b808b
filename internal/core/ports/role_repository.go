package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// RoleRepository persists permission tiers. Delete must refuse with
// domain.ErrHasDependents while any user still references the role.
type RoleRepository interface {
	List(ctx context.Context) ([]*domain.Role, error)
	Get(ctx context.Context, id int64) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}
