package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type stubTrainingRepo struct {
	trainings map[int64]*domain.Training
	nextID    int64
	deleteErr error
}

func newStubTrainingRepo() *stubTrainingRepo {
	return &stubTrainingRepo{trainings: make(map[int64]*domain.Training)}
}

func (r *stubTrainingRepo) List(_ context.Context) ([]*domain.Training, error) {
	out := make([]*domain.Training, 0, len(r.trainings))
	for _, tr := range r.trainings {
		clone := *tr
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTrainingRepo) Get(_ context.Context, id int64) (*domain.Training, error) {
	tr, ok := r.trainings[id]
	if !ok {
		return nil, domain.ErrTrainingNotFound
	}
	clone := *tr
	return &clone, nil
}

func (r *stubTrainingRepo) Create(_ context.Context, training *domain.Training) (*domain.Training, error) {
	r.nextID++
	clone := *training
	clone.ID = r.nextID
	r.trainings[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTrainingRepo) Update(_ context.Context, training *domain.Training) (*domain.Training, error) {
	if _, ok := r.trainings[training.ID]; !ok {
		return nil, domain.ErrTrainingNotFound
	}
	clone := *training
	r.trainings[training.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTrainingRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.trainings[id]; !ok {
		return domain.ErrTrainingNotFound
	}
	delete(r.trainings, id)
	return nil
}

func validTrainingInput() ports.TrainingInput {
	return ports.TrainingInput{
		Date:      "2026-09-01",
		StartTime: "18:00",
		EndTime:   "19:30",
		Location:  "Main Rink",
		Type:      "ice",
		TeamID:    1,
	}
}

func TestTrainingService_Create_Success(t *testing.T) {
	svc := NewTrainingService(newStubTrainingRepo(), zerolog.Nop())

	training, err := svc.Create(context.Background(), validTrainingInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if training.StartTime != "18:00" {
		t.Fatalf("unexpected start time: %q", training.StartTime)
	}
	if training.EndTime != "19:30" {
		t.Fatalf("unexpected end time: %q", training.EndTime)
	}
}

func TestTrainingService_Create_NormalizesSeconds(t *testing.T) {
	svc := NewTrainingService(newStubTrainingRepo(), zerolog.Nop())

	input := validTrainingInput()
	input.StartTime = "18:00:00"
	training, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if training.StartTime != "18:00" {
		t.Fatalf("expected HH:MM form, got %q", training.StartTime)
	}
}

func TestTrainingService_Create_RequiredFields(t *testing.T) {
	svc := NewTrainingService(newStubTrainingRepo(), zerolog.Nop())

	input := validTrainingInput()
	input.TeamID = 0
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing team, got %v", err)
	}

	input = validTrainingInput()
	input.Location = "  "
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank location, got %v", err)
	}
}

func TestTrainingService_Create_BadClock(t *testing.T) {
	svc := NewTrainingService(newStubTrainingRepo(), zerolog.Nop())

	input := validTrainingInput()
	input.StartTime = "6pm"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad clock, got %v", err)
	}
}

func TestTrainingService_Delete_Guarded(t *testing.T) {
	repo := newStubTrainingRepo()
	repo.deleteErr = domain.ErrHasDependents
	svc := NewTrainingService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("expected ErrHasDependents, got %v", err)
	}
}
