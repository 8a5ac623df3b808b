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

const clockLayout = "15:04"

type TrainingService struct {
	repo   ports.TrainingRepository
	logger zerolog.Logger
}

func NewTrainingService(repo ports.TrainingRepository, logger zerolog.Logger) *TrainingService {
	return &TrainingService{repo: repo, logger: logger}
}

func (s *TrainingService) List(ctx context.Context) ([]*domain.Training, error) {
	return s.repo.List(ctx)
}

func (s *TrainingService) Get(ctx context.Context, id int64) (*domain.Training, error) {
	return s.repo.Get(ctx, id)
}

func (s *TrainingService) Create(ctx context.Context, input ports.TrainingInput) (*domain.Training, error) {
	training, err := trainingFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, training)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("training_id", created.ID).
		Int64("team_id", created.TeamID).
		Msg("training created")
	return created, nil
}

func (s *TrainingService) Update(ctx context.Context, id int64, input ports.TrainingInput) (*domain.Training, error) {
	training, err := trainingFromInput(input)
	if err != nil {
		return nil, err
	}
	training.ID = id

	return s.repo.Update(ctx, training)
}

// Delete removes a session unless player ratings were already recorded for
// it.
func (s *TrainingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("training_id", id).Msg("training deleted")
	return nil
}

func trainingFromInput(input ports.TrainingInput) (*domain.Training, error) {
	location := strings.TrimSpace(input.Location)
	trainingType := strings.TrimSpace(input.Type)
	if input.Date == "" || input.StartTime == "" || location == "" || trainingType == "" || input.TeamID == 0 {
		return nil, fmt.Errorf("training_date, start_time, location, training_type and team_id are required: %w", domain.ErrValidation)
	}

	date, err := parseDate(input.Date, "training_date")
	if err != nil {
		return nil, err
	}
	startTime, err := parseClock(input.StartTime, "start_time")
	if err != nil {
		return nil, err
	}

	training := &domain.Training{
		Date:      date,
		StartTime: startTime,
		Location:  location,
		Type:      trainingType,
		TeamID:    input.TeamID,
		CoachID:   input.CoachID,
	}

	if input.EndTime != "" {
		endTime, err := parseClock(input.EndTime, "end_time")
		if err != nil {
			return nil, err
		}
		training.EndTime = endTime
	}

	return training, nil
}

// parseClock normalizes a clock value to HH:MM, accepting HH:MM:SS as well
// since Postgres time columns round-trip with seconds.
func parseClock(value, field string) (string, error) {
	for _, layout := range []string{clockLayout, "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(clockLayout), nil
		}
	}
	return "", fmt.Errorf("%s must be a clock time in %s form: %w", field, clockLayout, domain.ErrValidation)
}

var _ ports.TrainingService = (*TrainingService)(nil)
