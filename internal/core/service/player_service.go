package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

type PlayerService struct {
	repo   ports.PlayerRepository
	logger zerolog.Logger
}

func NewPlayerService(repo ports.PlayerRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{repo: repo, logger: logger}
}

func (s *PlayerService) List(ctx context.Context) ([]*domain.Player, error) {
	return s.repo.List(ctx)
}

func (s *PlayerService) Get(ctx context.Context, id int64) (*domain.Player, error) {
	return s.repo.Get(ctx, id)
}

func (s *PlayerService) Create(ctx context.Context, input ports.PlayerInput) (*domain.Player, error) {
	player, err := playerFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, player)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("player_id", created.ID).
		Str("last_name", created.LastName).
		Msg("player created")
	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, id int64, input ports.PlayerInput) (*domain.Player, error) {
	player, err := playerFromInput(input)
	if err != nil {
		return nil, err
	}
	player.ID = id

	return s.repo.Update(ctx, player)
}

// Delete removes a player unless training stats still reference them.
func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("player_id", id).Msg("player deleted")
	return nil
}

func playerFromInput(input ports.PlayerInput) (*domain.Player, error) {
	lastName := strings.TrimSpace(input.LastName)
	firstName := strings.TrimSpace(input.FirstName)
	if lastName == "" || firstName == "" || input.BirthDate == "" {
		return nil, fmt.Errorf("last_name, first_name and birth_date are required: %w", domain.ErrValidation)
	}

	birthDate, err := parseDate(input.BirthDate, "birth_date")
	if err != nil {
		return nil, err
	}

	player := &domain.Player{
		LastName:      lastName,
		FirstName:     firstName,
		MiddleName:    strings.TrimSpace(input.MiddleName),
		BirthDate:     birthDate,
		Position:      strings.TrimSpace(input.Position),
		Height:        input.Height,
		Weight:        input.Weight,
		CurrentTeamID: input.CurrentTeamID,
	}

	if input.ContractExpiry != "" {
		expiry, err := parseDate(input.ContractExpiry, "contract_expiry")
		if err != nil {
			return nil, err
		}
		player.ContractExpiry = &expiry
	}

	return player, nil
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in %s form: %w", field, dateLayout, domain.ErrValidation)
	}
	return t, nil
}

var _ ports.PlayerService = (*PlayerService)(nil)
