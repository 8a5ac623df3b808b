package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type stubRoleRepo struct {
	roles     map[int64]*domain.Role
	nextID    int64
	deleteErr error
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[int64]*domain.Role)}
}

func (r *stubRoleRepo) List(_ context.Context) ([]*domain.Role, error) {
	out := make([]*domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		clone := *role
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRoleRepo) Get(_ context.Context, id int64) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	for _, existing := range r.roles {
		if existing.Code == role.Code {
			return nil, domain.ErrRoleCodeTaken
		}
	}
	r.nextID++
	clone := *role
	clone.ID = r.nextID
	r.roles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if _, ok := r.roles[role.ID]; !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	r.roles[role.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, id)
	return nil
}

func TestRoleService_Create_CanonicalizesCode(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	role, err := svc.Create(context.Background(), ports.RoleInput{Name: "Coach", Code: " coach "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if role.Code != "COACH" {
		t.Fatalf("expected code COACH, got %q", role.Code)
	}
}

func TestRoleService_Create_Validation(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.RoleInput{Name: "", Code: "X"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.RoleInput{Name: "X", Code: "  "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank code, got %v", err)
	}
}

func TestRoleService_Create_DuplicateCode(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.RoleInput{Name: "Coach", Code: "COACH"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	// Same code in different case collides after canonicalization.
	if _, err := svc.Create(context.Background(), ports.RoleInput{Name: "Coach 2", Code: "coach"}); !errors.Is(err, domain.ErrRoleCodeTaken) {
		t.Fatalf("expected ErrRoleCodeTaken, got %v", err)
	}
}

func TestRoleService_Delete_Guarded(t *testing.T) {
	repo := newStubRoleRepo()
	repo.deleteErr = domain.ErrHasDependents
	svc := NewRoleService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrHasDependents) {
		t.Fatalf("expected ErrHasDependents, got %v", err)
	}
}
