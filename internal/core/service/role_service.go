package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

// RoleService implements role management. Codes are canonicalized to
// uppercase here so every later comparison in the authorization filter is a
// plain exact match.
type RoleService struct {
	repo   ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, logger: logger}
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.repo.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id int64) (*domain.Role, error) {
	return s.repo.Get(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, input ports.RoleInput) (*domain.Role, error) {
	role, err := roleFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("role_id", created.ID).Str("code", created.Code).Msg("role created")
	return created, nil
}

func (s *RoleService) Update(ctx context.Context, id int64, input ports.RoleInput) (*domain.Role, error) {
	role, err := roleFromInput(input)
	if err != nil {
		return nil, err
	}
	role.ID = id

	return s.repo.Update(ctx, role)
}

// Delete removes a role. The repository refuses with ErrHasDependents while
// any user still references it; the FK constraint backs up the check if a
// user is inserted between probe and delete.
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("role_id", id).Msg("role deleted")
	return nil
}

func roleFromInput(input ports.RoleInput) (*domain.Role, error) {
	name := strings.TrimSpace(input.Name)
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if name == "" || code == "" {
		return nil, fmt.Errorf("name and code are required: %w", domain.ErrValidation)
	}
	return &domain.Role{
		Name:        name,
		Code:        code,
		Description: strings.TrimSpace(input.Description),
	}, nil
}

var _ ports.RoleService = (*RoleService)(nil)
