package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type stubMatchRepo struct {
	matches map[int64]*domain.Match
	nextID  int64
}

func newStubMatchRepo() *stubMatchRepo {
	return &stubMatchRepo{matches: make(map[int64]*domain.Match)}
}

func (r *stubMatchRepo) List(_ context.Context) ([]*domain.Match, error) {
	out := make([]*domain.Match, 0, len(r.matches))
	for _, m := range r.matches {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubMatchRepo) Get(_ context.Context, id int64) (*domain.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMatchRepo) Create(_ context.Context, match *domain.Match) (*domain.Match, error) {
	r.nextID++
	clone := *match
	clone.ID = r.nextID
	r.matches[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMatchRepo) Update(_ context.Context, match *domain.Match) (*domain.Match, error) {
	if _, ok := r.matches[match.ID]; !ok {
		return nil, domain.ErrMatchNotFound
	}
	clone := *match
	r.matches[match.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMatchRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.matches[id]; !ok {
		return domain.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func TestMatchService_Create_DefaultsStatus(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), zerolog.Nop())

	match, err := svc.Create(context.Background(), ports.MatchInput{
		Date:       "2026-10-05",
		Time:       "19:00",
		HomeTeamID: 1,
		AwayTeamID: 2,
		Season:     "2026/27",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if match.Status != domain.MatchScheduled {
		t.Fatalf("expected scheduled status, got %q", match.Status)
	}
	if match.HomeScore != nil || match.AwayScore != nil {
		t.Fatalf("expected nil scores for unplayed match")
	}
}

func TestMatchService_Create_SameTeam(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.MatchInput{
		Date:       "2026-10-05",
		HomeTeamID: 1,
		AwayTeamID: 1,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for same home and away team, got %v", err)
	}
}

func TestMatchService_Create_RequiredFields(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.MatchInput{HomeTeamID: 1, AwayTeamID: 2})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing date, got %v", err)
	}
}

func TestMatchService_Update_RecordsScore(t *testing.T) {
	repo := newStubMatchRepo()
	svc := NewMatchService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.MatchInput{
		Date:       "2026-10-05",
		HomeTeamID: 1,
		AwayTeamID: 2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	home, away := 4, 2
	updated, err := svc.Update(context.Background(), created.ID, ports.MatchInput{
		Date:       "2026-10-05",
		HomeTeamID: 1,
		AwayTeamID: 2,
		HomeScore:  &home,
		AwayScore:  &away,
		Status:     domain.MatchFinished,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.HomeScore == nil || *updated.HomeScore != 4 {
		t.Fatalf("unexpected home score: %v", updated.HomeScore)
	}
	if updated.Status != domain.MatchFinished {
		t.Fatalf("expected finished status, got %q", updated.Status)
	}
}
