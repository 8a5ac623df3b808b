package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// TrainingRepository persists practice sessions. List and Get join the team
// name and coach name. Delete must refuse with domain.ErrHasDependents while
// training stats still reference the session.
type TrainingRepository interface {
	List(ctx context.Context) ([]*domain.Training, error)
	Get(ctx context.Context, id int64) (*domain.Training, error)
	Create(ctx context.Context, training *domain.Training) (*domain.Training, error)
	Update(ctx context.Context, training *domain.Training) (*domain.Training, error)
	Delete(ctx context.Context, id int64) error
}
