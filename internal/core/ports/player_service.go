package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// PlayerInput carries the writable player fields. Dates arrive as
// "2006-01-02" strings straight from the HTTP layer; the service parses them
// and rejects malformed values as validation errors.
type PlayerInput struct {
	LastName       string
	FirstName      string
	MiddleName     string
	BirthDate      string
	Position       string
	Height         int
	Weight         int
	ContractExpiry string
	CurrentTeamID  *int64
}

type PlayerService interface {
	List(ctx context.Context) ([]*domain.Player, error)
	Get(ctx context.Context, id int64) (*domain.Player, error)
	Create(ctx context.Context, input PlayerInput) (*domain.Player, error)
	Update(ctx context.Context, id int64, input PlayerInput) (*domain.Player, error)
	Delete(ctx context.Context, id int64) error
}
