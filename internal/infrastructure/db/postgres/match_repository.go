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

const matchSelect = `
	SELECT id, match_date, COALESCE(to_char(match_time, 'HH24:MI'), ''),
	       home_team_id, away_team_id, home_score, away_score,
	       COALESCE(match_type, ''), COALESCE(season, ''), status
	FROM matches`

type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

func (r *MatchRepository) List(ctx context.Context) ([]*domain.Match, error) {
	rows, err := r.pool.Query(ctx, matchSelect+" ORDER BY match_date DESC")
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []*domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *MatchRepository) Get(ctx context.Context, id int64) (*domain.Match, error) {
	m, err := scanMatch(r.pool.QueryRow(ctx, matchSelect+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MatchRepository) Create(ctx context.Context, match *domain.Match) (*domain.Match, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO matches (match_date, match_time, home_team_id, away_team_id,
		                     home_score, away_score, match_type, season, status)
		VALUES ($1, $2::time, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		match.Date, nullIfEmpty(match.Time), match.HomeTeamID, match.AwayTeamID,
		match.HomeScore, match.AwayScore, match.Type, match.Season, match.Status)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("team does not exist: %w", domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("insert match: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *MatchRepository) Update(ctx context.Context, match *domain.Match) (*domain.Match, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE matches
		SET match_date = $1, match_time = $2::time, home_team_id = $3, away_team_id = $4,
		    home_score = $5, away_score = $6, match_type = $7, season = $8, status = $9
		WHERE id = $10`,
		match.Date, nullIfEmpty(match.Time), match.HomeTeamID, match.AwayTeamID,
		match.HomeScore, match.AwayScore, match.Type, match.Season, match.Status, match.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("team does not exist: %w", domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("update match: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, domain.ErrMatchNotFound
	}

	return r.Get(ctx, match.ID)
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func scanMatch(row pgx.Row) (*domain.Match, error) {
	m := &domain.Match{}
	err := row.Scan(
		&m.ID, &m.Date, &m.Time,
		&m.HomeTeamID, &m.AwayTeamID, &m.HomeScore, &m.AwayScore,
		&m.Type, &m.Season, &m.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan match: %w", err)
	}
	return m, nil
}

var _ ports.MatchRepository = (*MatchRepository)(nil)
