package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

// AuthService implements registration, login, and per-request user
// re-resolution for the authentication gate.
type AuthService struct {
	repo    ports.AuthRepository
	tokens  ports.TokenCodec
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenCodec, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", domain.ErrValidation)
	}
	if input.RoleID == 0 {
		return nil, fmt.Errorf("role_id is required: %w", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: string(hash),
		RoleID:       input.RoleID,
		IsActive:     true,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both map to ErrInvalidCredentials so the response does not reveal
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooMany(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, domain.ErrUserBlocked
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// CurrentUser fetches the caller's current record and role. It is the
// store-rechecked half of the gate: a deactivated account or a role change is
// visible on the very next request, at the cost of one lookup per request.
func (s *AuthService) CurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrUserBlocked
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserBlocked
	}
	return user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.Fail(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}

var _ ports.AuthService = (*AuthService)(nil)
