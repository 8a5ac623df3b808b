package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	RoleID   int64
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// CurrentUser re-resolves the caller from the credential store. The gate
	// uses it on every authenticated request so deactivation and role changes
	// take effect immediately rather than at token expiry.
	CurrentUser(ctx context.Context, id int64) (*domain.User, error)
}
