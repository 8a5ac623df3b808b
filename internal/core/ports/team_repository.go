package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// TeamRepository persists teams. Delete must refuse with
// domain.ErrHasDependents while players, trainings, or matches still
// reference the team.
type TeamRepository interface {
	List(ctx context.Context) ([]*domain.Team, error)
	Get(ctx context.Context, id int64) (*domain.Team, error)
	Create(ctx context.Context, team *domain.Team) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) (*domain.Team, error)
	Delete(ctx context.Context, id int64) error
}
