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

// teamDependents lists every table that blocks a team delete.
var teamDependents = []DependentCheck{
	{Table: "players", Column: "current_team_id", Label: "players"},
	{Table: "trainings", Column: "team_id", Label: "trainings"},
	{Table: "matches", Column: "home_team_id", Label: "matches"},
	{Table: "matches", Column: "away_team_id", Label: "matches"},
}

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, COALESCE(league, ''), COALESCE(level, ''), COALESCE(season, ''), created_at
		FROM teams
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		team := &domain.Team{}
		if err := rows.Scan(&team.ID, &team.Name, &team.League, &team.Level, &team.Season, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) Get(ctx context.Context, id int64) (*domain.Team, error) {
	team := &domain.Team{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, COALESCE(league, ''), COALESCE(level, ''), COALESCE(season, ''), created_at
		FROM teams
		WHERE id = $1`, id).
		Scan(&team.ID, &team.Name, &team.League, &team.Level, &team.Season, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return team, nil
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO teams (name, league, level, season)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		team.Name, team.League, team.Level, team.Season).
		Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}
	return team, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE teams
		SET name = $1, league = $2, level = $3, season = $4
		WHERE id = $5
		RETURNING created_at`,
		team.Name, team.League, team.Level, team.Season, team.ID).
		Scan(&team.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("update team: %w", err)
	}
	return team, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	label, err := FirstDependent(ctx, r.pool, id, teamDependents...)
	if err != nil {
		return err
	}
	if label != "" {
		return fmt.Errorf("team is still referenced by %s: %w", label, domain.ErrHasDependents)
	}

	res, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("team is still referenced: %w", domain.ErrHasDependents)
		}
		return fmt.Errorf("delete team: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

var _ ports.TeamRepository = (*TeamRepository)(nil)
