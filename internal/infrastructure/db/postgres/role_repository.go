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

// roleDependents lists the tables that block a role delete.
var roleDependents = []DependentCheck{
	{Table: "users", Column: "role_id", Label: "users"},
}

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) List(ctx context.Context) ([]*domain.Role, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, code, COALESCE(description, ''), created_at, updated_at
		FROM roles
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var roles []*domain.Role
	for rows.Next() {
		role := &domain.Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.Code, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *RoleRepository) Get(ctx context.Context, id int64) (*domain.Role, error) {
	role := &domain.Role{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, code, COALESCE(description, ''), created_at, updated_at
		FROM roles
		WHERE id = $1`, id).
		Scan(&role.ID, &role.Name, &role.Code, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO roles (name, code, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		role.Name, role.Code, role.Description).
		Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "roles_code_key") {
			return nil, domain.ErrRoleCodeTaken
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}
	return role, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE roles
		SET name = $1, code = $2, description = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at`,
		role.Name, role.Code, role.Description, role.ID).
		Scan(&role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		if isUniqueViolation(err, "roles_code_key") {
			return nil, domain.ErrRoleCodeTaken
		}
		return nil, fmt.Errorf("update role: %w", err)
	}
	return role, nil
}

// Delete probes for referencing users before deleting; the FK constraint is
// the backstop when a user appears between probe and delete.
func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	label, err := FirstDependent(ctx, r.pool, id, roleDependents...)
	if err != nil {
		return err
	}
	if label != "" {
		return fmt.Errorf("role is still assigned to %s: %w", label, domain.ErrHasDependents)
	}

	res, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("role is still assigned to users: %w", domain.ErrHasDependents)
		}
		return fmt.Errorf("delete role: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

var _ ports.RoleRepository = (*RoleRepository)(nil)
