package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

// UserService covers the user directory: listing accounts and mutating
// profile, role, and active flag. There is no hard delete; deactivation is
// the only removal path.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.RoleID != nil {
		user.RoleID = *input.RoleID
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Bool("is_active", updated.IsActive).Msg("user updated")
	return updated, nil
}

var _ ports.UserService = (*UserService)(nil)
