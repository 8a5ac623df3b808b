package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

const userWithRoleQuery = `
	SELECT u.id, u.email, u.full_name, u.password_hash, u.role_id, u.is_active, u.created_at,
	       r.id, r.name, r.code, COALESCE(r.description, ''), r.created_at, r.updated_at
	FROM users u
	JOIN roles r ON r.id = u.role_id`

// AuthRepository is the credential store: user records with their role
// preloaded, since both login and the per-request gate recheck need the role
// code alongside the account.
type AuthRepository struct {
	pool *pgxpool.Pool
}

func NewAuthRepository(pool *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{pool: pool}
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, userWithRoleQuery+" WHERE u.email = $1", email)
	return scanUserWithRole(row)
}

func (r *AuthRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, userWithRoleQuery+" WHERE u.id = $1", id)
	return scanUserWithRole(row)
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, full_name, role_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Email, user.PasswordHash, user.FullName, user.RoleID, user.IsActive)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return nil, domain.ErrEmailTaken
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("role %d: %w", user.RoleID, domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back with the role joined
	return r.FindByID(ctx, id)
}

func scanUserWithRole(row pgx.Row) (*domain.User, error) {
	u := &domain.User{Role: &domain.Role{}}
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.RoleID, &u.IsActive, &u.CreatedAt,
		&u.Role.ID, &u.Role.Name, &u.Role.Code, &u.Role.Description, &u.Role.CreatedAt, &u.Role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

var _ ports.AuthRepository = (*AuthRepository)(nil)
