package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

type stubAuthRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Role != nil {
		role := *u.Role
		clone.Role = &role
	}
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = r.nextID
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// stubLimiter counts failures in memory and blocks past maxAttempts.
type stubLimiter struct {
	counts      map[string]int64
	maxAttempts int64
}

func newStubLimiter(max int64) *stubLimiter {
	return &stubLimiter{counts: make(map[string]int64), maxAttempts: max}
}

func (l *stubLimiter) TooMany(_ context.Context, email string) (bool, error) {
	return l.counts[email] >= l.maxAttempts, nil
}

func (l *stubLimiter) Fail(_ context.Context, email string) error {
	l.counts[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	delete(l.counts, email)
	return nil
}

func newAuthService(repo *stubAuthRepo, limiter *stubLimiter) *AuthService {
	codec := NewTokenCodec("secret", time.Hour)
	if limiter == nil {
		return NewAuthService(repo, codec, nil, zerolog.Nop())
	}
	return NewAuthService(repo, codec, limiter, zerolog.Nop())
}

func registerUser(t *testing.T, svc *AuthService, email, password string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    email,
		Password: password,
		FullName: "Test User",
		RoleID:   1,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo, nil)

	user := registerUser(t, svc, "Alice@Example.com ", "pass123")
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.users[user.Email].PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.IsActive {
		t.Fatalf("new accounts should start active")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubAuthRepo(), nil)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "", Password: "pass", RoleID: 1})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty email, got %v", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterInput{Email: "a@b.c", Password: "pass"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo, nil)

	registerUser(t, svc, "bob@example.com", "pass")
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "bob@example.com", Password: "pass2", RoleID: 1,
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	limiter := newStubLimiter(5)
	svc := newAuthService(repo, limiter)

	registerUser(t, svc, "carol@example.com", "s3cret")

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %q", user.Email)
	}

	claims, err := NewTokenCodec("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token subject %d does not match user %d", claims.UserID, user.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	limiter := newStubLimiter(5)
	svc := newAuthService(repo, limiter)

	registerUser(t, svc, "dave@example.com", "right")

	_, _, err := svc.Login(context.Background(), "dave@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.counts["dave@example.com"] != 1 {
		t.Fatalf("expected one recorded failure, got %d", limiter.counts["dave@example.com"])
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubAuthRepo(), newStubLimiter(5))

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_Login_Blocked(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo, nil)

	user := registerUser(t, svc, "eve@example.com", "pass")
	repo.users[user.Email].IsActive = false

	_, _, err := svc.Login(context.Background(), "eve@example.com", "pass")
	if !errors.Is(err, domain.ErrUserBlocked) {
		t.Fatalf("expected ErrUserBlocked, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubAuthRepo()
	limiter := newStubLimiter(3)
	svc := newAuthService(repo, limiter)

	registerUser(t, svc, "frank@example.com", "right")

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(context.Background(), "frank@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	// Budget exhausted: even the correct password is refused now.
	_, _, err := svc.Login(context.Background(), "frank@example.com", "right")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ResetsLimiter(t *testing.T) {
	repo := newStubAuthRepo()
	limiter := newStubLimiter(3)
	svc := newAuthService(repo, limiter)

	registerUser(t, svc, "gina@example.com", "right")

	_, _, _ = svc.Login(context.Background(), "gina@example.com", "wrong")
	if _, _, err := svc.Login(context.Background(), "gina@example.com", "right"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if limiter.counts["gina@example.com"] != 0 {
		t.Fatalf("expected counter reset after successful login")
	}
}

func TestAuthService_CurrentUser_ReflectsDeactivation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo, nil)

	user := registerUser(t, svc, "henry@example.com", "pass")

	if _, err := svc.CurrentUser(context.Background(), user.ID); err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}

	repo.users[user.Email].IsActive = false
	if _, err := svc.CurrentUser(context.Background(), user.ID); !errors.Is(err, domain.ErrUserBlocked) {
		t.Fatalf("expected ErrUserBlocked after deactivation, got %v", err)
	}
}

func TestAuthService_CurrentUser_ReflectsRoleChange(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo, nil)

	user := registerUser(t, svc, "iris@example.com", "pass")
	repo.users[user.Email].Role = &domain.Role{ID: 2, Code: domain.RoleCoach, Name: "Coach"}

	current, err := svc.CurrentUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if current.Role == nil || current.Role.Code != domain.RoleCoach {
		t.Fatalf("expected fresh role COACH, got %+v", current.Role)
	}
}

func TestAuthService_CurrentUser_Missing(t *testing.T) {
	svc := newAuthService(newStubAuthRepo(), nil)

	if _, err := svc.CurrentUser(context.Background(), 999); !errors.Is(err, domain.ErrUserBlocked) {
		t.Fatalf("expected ErrUserBlocked for missing user, got %v", err)
	}
}
