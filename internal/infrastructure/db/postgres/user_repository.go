package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

// UserRepository serves the user directory. It shares the users table with
// AuthRepository but exposes only the listing and mutation surface.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.pool.Query(ctx, userWithRoleQuery+" ORDER BY u.full_name")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUserWithRole(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, userWithRoleQuery+" WHERE u.id = $1", id)
	return scanUserWithRole(row)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET full_name = $1, role_id = $2, is_active = $3
		WHERE id = $4`,
		user.FullName, user.RoleID, user.IsActive, user.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("role %d: %w", user.RoleID, domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.Get(ctx, user.ID)
}

var _ ports.UserRepository = (*UserRepository)(nil)
