package ports

import (
	"context"

	"github.com/icehawks/roster-system/internal/core/domain"
)

// MatchInput carries the writable match fields. Date is "2006-01-02", Time is
// "15:04" and optional. Scores may be nil for unplayed fixtures.
type MatchInput struct {
	Date       string
	Time       string
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  *int
	AwayScore  *int
	Type       string
	Season     string
	Status     string
}

type MatchService interface {
	List(ctx context.Context) ([]*domain.Match, error)
	Get(ctx context.Context, id int64) (*domain.Match, error)
	Create(ctx context.Context, input MatchInput) (*domain.Match, error)
	Update(ctx context.Context, id int64, input MatchInput) (*domain.Match, error)
	Delete(ctx context.Context, id int64) error
}
