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

var playerDependents = []DependentCheck{
	{Table: "training_stats", Column: "player_id", Label: "training stats"},
}

const playerSelect = `
	SELECT p.id, p.last_name, p.first_name, COALESCE(p.middle_name, ''), p.birth_date,
	       COALESCE(p.position, ''), COALESCE(p.height, 0), COALESCE(p.weight, 0),
	       p.contract_expiry, p.current_team_id, COALESCE(t.name, ''),
	       p.created_at, p.updated_at
	FROM players p
	LEFT JOIN teams t ON t.id = p.current_team_id`

type PlayerRepository struct {
	pool *pgxpool.Pool
}

func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

func (r *PlayerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	rows, err := r.pool.Query(ctx, playerSelect+" ORDER BY p.last_name, p.first_name")
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []*domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *PlayerRepository) Get(ctx context.Context, id int64) (*domain.Player, error) {
	p, err := scanPlayer(r.pool.QueryRow(ctx, playerSelect+" WHERE p.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO players (last_name, first_name, middle_name, birth_date, position,
		                     height, weight, contract_expiry, current_team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		player.LastName, player.FirstName, player.MiddleName, player.BirthDate,
		player.Position, player.Height, player.Weight, player.ContractExpiry, player.CurrentTeamID)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("team does not exist: %w", domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("insert player: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE players
		SET last_name = $1, first_name = $2, middle_name = $3, birth_date = $4,
		    position = $5, height = $6, weight = $7, contract_expiry = $8,
		    current_team_id = $9, updated_at = now()
		WHERE id = $10`,
		player.LastName, player.FirstName, player.MiddleName, player.BirthDate,
		player.Position, player.Height, player.Weight, player.ContractExpiry,
		player.CurrentTeamID, player.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("team does not exist: %w", domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("update player: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, domain.ErrPlayerNotFound
	}

	return r.Get(ctx, player.ID)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	label, err := FirstDependent(ctx, r.pool, id, playerDependents...)
	if err != nil {
		return err
	}
	if label != "" {
		return fmt.Errorf("player is still referenced by %s: %w", label, domain.ErrHasDependents)
	}

	res, err := r.pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("player is still referenced: %w", domain.ErrHasDependents)
		}
		return fmt.Errorf("delete player: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	p := &domain.Player{}
	err := row.Scan(
		&p.ID, &p.LastName, &p.FirstName, &p.MiddleName, &p.BirthDate,
		&p.Position, &p.Height, &p.Weight,
		&p.ContractExpiry, &p.CurrentTeamID, &p.TeamName,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan player: %w", err)
	}
	return p, nil
}

var _ ports.PlayerRepository = (*PlayerRepository)(nil)
