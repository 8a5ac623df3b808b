package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DependentCheck names one table/column pair that may reference a record
// targeted for deletion. Label is the human word used in the refusal message
// ("users", "players", ...).
type DependentCheck struct {
	Table  string
	Column string
	Label  string
}

// FirstDependent probes each check in order and returns the label of the
// first table holding a referencing row, or "" when the record is free to
// delete. Table and column names come from compile-time constants, never from
// request input, so building the query with Sprintf is safe.
//
// The probe deliberately runs outside a transaction: a dependent row inserted
// between probe and delete is tolerated because the FK constraint itself
// still rejects the delete. The probe exists to produce a domain-specific
// message instead of a raw constraint error.
func FirstDependent(ctx context.Context, pool *pgxpool.Pool, id int64, checks ...DependentCheck) (string, error) {
	for _, check := range checks {
		query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", check.Table, check.Column)

		var exists bool
		if err := pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
			return "", fmt.Errorf("dependent probe %s.%s: %w", check.Table, check.Column, err)
		}
		if exists {
			return check.Label, nil
		}
	}
	return "", nil
}
