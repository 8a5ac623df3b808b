package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// TrainingInput carries the writable training fields. Date is "2006-01-02",
// StartTime/EndTime are "15:04"; the service parses and validates all three.
type TrainingInput struct {
	Date      string
	StartTime string
	EndTime   string
	Location  string
	Type      string
	TeamID    int64
	CoachID   *int64
}

type TrainingService interface {
	List(ctx context.Context) ([]*domain.Training, error)
	Get(ctx context.Context, id int64) (*domain.Training, error)
	Create(ctx context.Context, input TrainingInput) (*domain.Training, error)
	Update(ctx context.Context, id int64, input TrainingInput) (*domain.Training, error)
	Delete(ctx context.Context, id int64) error
}
