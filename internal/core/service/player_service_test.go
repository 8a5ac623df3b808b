package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type stubPlayerRepo struct {
	players   map[int64]*domain.Player
	nextID    int64
	deleteErr error
}

func newStubPlayerRepo() *stubPlayerRepo {
	return &stubPlayerRepo{players: make(map[int64]*domain.Player)}
}

func (r *stubPlayerRepo) List(_ context.Context) ([]*domain.Player, error) {
	out := make([]*domain.Player, 0, len(r.players))
	for _, p := range r.players {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPlayerRepo) Get(_ context.Context, id int64) (*domain.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPlayerRepo) Create(_ context.Context, player *domain.Player) (*domain.Player, error) {
	r.nextID++
	clone := *player
	clone.ID = r.nextID
	r.players[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPlayerRepo) Update(_ context.Context, player *domain.Player) (*domain.Player, error) {
	if _, ok := r.players[player.ID]; !ok {
		return nil, domain.ErrPlayerNotFound
	}
	clone := *player
	r.players[player.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPlayerRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.players[id]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(r.players, id)
	return nil
}

func TestPlayerService_Create_Success(t *testing.T) {
	svc := NewPlayerService(newStubPlayerRepo(), zerolog.Nop())

	player, err := svc.Create(context.Background(), ports.PlayerInput{
		LastName:       "Orr",
		FirstName:      "Bobby",
		BirthDate:      "2008-03-20",
		Position:       "defense",
		Height:         182,
		Weight:         88,
		ContractExpiry: "2027-06-30",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if player.BirthDate != time.Date(2008, 3, 20, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected birth date: %v", player.BirthDate)
	}
	if player.ContractExpiry == nil || player.ContractExpiry.Year() != 2027 {
		t.Fatalf("unexpected contract expiry: %v", player.ContractExpiry)
	}
}

func TestPlayerService_Create_RequiredFields(t *testing.T) {
	svc := NewPlayerService(newStubPlayerRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.PlayerInput{FirstName: "Bobby", BirthDate: "2008-03-20"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing last name, got %v", err)
	}
}

func TestPlayerService_Create_BadDate(t *testing.T) {
	svc := NewPlayerService(newStubPlayerRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.PlayerInput{
		LastName: "Orr", FirstName: "Bobby", BirthDate: "20-03-2008",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad date, got %v", err)
	}

	_, err = svc.Create(context.Background(), ports.PlayerInput{
		LastName: "Orr", FirstName: "Bobby", BirthDate: "2008-03-20", ContractExpiry: "soon",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad expiry, got %v", err)
	}
}

func TestPlayerService_Create_NoContractExpiry(t *testing.T) {
	svc := NewPlayerService(newStubPlayerRepo(), zerolog.Nop())

	player, err := svc.Create(context.Background(), ports.PlayerInput{
		LastName: "Orr", FirstName: "Bobby", BirthDate: "2008-03-20",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if player.ContractExpiry != nil {
		t.Fatalf("expected nil contract expiry, got %v", player.ContractExpiry)
	}
}

func TestPlayerService_Delete_Guarded(t *testing.T) {
	repo := newStubPlayerRepo()
	repo.deleteErr = domain.ErrHasDependents
	svc := NewPlayerService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("expected ErrHasDependents, got %v", err)
	}
}
