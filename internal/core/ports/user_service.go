package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// UpdateUserInput carries the mutable user fields. Nil pointers leave the
// stored value untouched. IsActive=false is the soft-deactivation path; there
// is no hard delete for users.
type UpdateUserInput struct {
	FullName *string
	RoleID   *int64
	IsActive *bool
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
}
