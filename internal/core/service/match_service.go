package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type MatchService struct {
	repo   ports.MatchRepository
	logger zerolog.Logger
}

func NewMatchService(repo ports.MatchRepository, logger zerolog.Logger) *MatchService {
	return &MatchService{repo: repo, logger: logger}
}

func (s *MatchService) List(ctx context.Context) ([]*domain.Match, error) {
	return s.repo.List(ctx)
}

func (s *MatchService) Get(ctx context.Context, id int64) (*domain.Match, error) {
	return s.repo.Get(ctx, id)
}

func (s *MatchService) Create(ctx context.Context, input ports.MatchInput) (*domain.Match, error) {
	match, err := matchFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, match)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("match_id", created.ID).
		Int64("home_team_id", created.HomeTeamID).
		Int64("away_team_id", created.AwayTeamID).
		Msg("match created")
	return created, nil
}

func (s *MatchService) Update(ctx context.Context, id int64, input ports.MatchInput) (*domain.Match, error) {
	match, err := matchFromInput(input)
	if err != nil {
		return nil, err
	}
	match.ID = id

	return s.repo.Update(ctx, match)
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("match_id", id).Msg("match deleted")
	return nil
}

func matchFromInput(input ports.MatchInput) (*domain.Match, error) {
	if input.Date == "" || input.HomeTeamID == 0 || input.AwayTeamID == 0 {
		return nil, fmt.Errorf("match_date, home_team_id and away_team_id are required: %w", domain.ErrValidation)
	}
	if input.HomeTeamID == input.AwayTeamID {
		return nil, fmt.Errorf("a team cannot play against itself: %w", domain.ErrValidation)
	}

	date, err := parseDate(input.Date, "match_date")
	if err != nil {
		return nil, err
	}

	match := &domain.Match{
		Date:       date,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		HomeScore:  input.HomeScore,
		AwayScore:  input.AwayScore,
		Type:       strings.TrimSpace(input.Type),
		Season:     strings.TrimSpace(input.Season),
		Status:     strings.TrimSpace(input.Status),
	}

	if input.Time != "" {
		matchTime, err := parseClock(input.Time, "match_time")
		if err != nil {
			return nil, err
		}
		match.Time = matchTime
	}

	if match.Status == "" {
		match.Status = domain.MatchScheduled
	}

	return match, nil
}

var _ ports.MatchService = (*MatchService)(nil)
