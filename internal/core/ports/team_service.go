package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

type TeamInput struct {
	Name   string
	League string
	Level  string
	Season string
}

type TeamService interface {
	List(ctx context.Context) ([]*domain.Team, error)
	Get(ctx context.Context, id int64) (*domain.Team, error)
	Create(ctx context.Context, input TeamInput) (*domain.Team, error)
	Update(ctx context.Context, id int64, input TeamInput) (*domain.Team, error)
	Delete(ctx context.Context, id int64) error
}
