package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// RoleInput carries the writable role fields. Code is canonicalized to
// uppercase by the service before it reaches the store.
type RoleInput struct {
	Name        string
	Code        string
	Description string
}

type RoleService interface {
	List(ctx context.Context) ([]*domain.Role, error)
	Get(ctx context.Context, id int64) (*domain.Role, error)
	Create(ctx context.Context, input RoleInput) (*domain.Role, error)
	Update(ctx context.Context, id int64, input RoleInput) (*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}
