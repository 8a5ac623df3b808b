package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// PlayerRepository persists players. List and Get join the current team name.
// Delete must refuse with domain.ErrHasDependents while training stats still
// reference the player.
type PlayerRepository interface {
	List(ctx context.Context) ([]*domain.Player, error)
	Get(ctx context.Context, id int64) (*domain.Player, error)
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) (*domain.Player, error)
	Delete(ctx context.Context, id int64) error
}
