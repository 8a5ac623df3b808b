package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type TeamService struct {
	repo   ports.TeamRepository
	logger zerolog.Logger
}

func NewTeamService(repo ports.TeamRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.repo.List(ctx)
}

func (s *TeamService) Get(ctx context.Context, id int64) (*domain.Team, error) {
	return s.repo.Get(ctx, id)
}

func (s *TeamService) Create(ctx context.Context, input ports.TeamInput) (*domain.Team, error) {
	team, err := teamFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, team)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("team_id", created.ID).Str("name", created.Name).Msg("team created")
	return created, nil
}

func (s *TeamService) Update(ctx context.Context, id int64, input ports.TeamInput) (*domain.Team, error) {
	team, err := teamFromInput(input)
	if err != nil {
		return nil, err
	}
	team.ID = id

	return s.repo.Update(ctx, team)
}

// Delete removes a team unless players, trainings, or matches still point at
// it; the repository reports that case as ErrHasDependents.
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("team_id", id).Msg("team deleted")
	return nil
}

func teamFromInput(input ports.TeamInput) (*domain.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	return &domain.Team{
		Name:   name,
		League: strings.TrimSpace(input.League),
		Level:  strings.TrimSpace(input.Level),
		Season: strings.TrimSpace(input.Season),
	}, nil
}

var _ ports.TeamService = (*TeamService)(nil)
