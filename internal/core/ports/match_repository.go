package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

type MatchRepository interface {
	List(ctx context.Context) ([]*domain.Match, error)
	Get(ctx context.Context, id int64) (*domain.Match, error)
	Create(ctx context.Context, match *domain.Match) (*domain.Match, error)
	Update(ctx context.Context, match *domain.Match) (*domain.Match, error)
	Delete(ctx context.Context, id int64) error
}
