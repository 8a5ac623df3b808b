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

var trainingDependents = []DependentCheck{
	{Table: "training_stats", Column: "training_id", Label: "player ratings"},
}

const trainingSelect = `
	SELECT t.id, t.training_date, to_char(t.start_time, 'HH24:MI'),
	       COALESCE(to_char(t.end_time, 'HH24:MI'), ''),
	       t.location, t.training_type, t.team_id, t.coach_id,
	       tm.name, COALESCE(u.full_name, '')
	FROM trainings t
	JOIN teams tm ON tm.id = t.team_id
	LEFT JOIN users u ON u.id = t.coach_id`

type TrainingRepository struct {
	pool *pgxpool.Pool
}

func NewTrainingRepository(pool *pgxpool.Pool) *TrainingRepository {
	return &TrainingRepository{pool: pool}
}

func (r *TrainingRepository) List(ctx context.Context) ([]*domain.Training, error) {
	rows, err := r.pool.Query(ctx, trainingSelect+" ORDER BY t.training_date DESC, t.start_time DESC")
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	defer rows.Close()

	var trainings []*domain.Training
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}
	return trainings, rows.Err()
}

func (r *TrainingRepository) Get(ctx context.Context, id int64) (*domain.Training, error) {
	t, err := scanTraining(r.pool.QueryRow(ctx, trainingSelect+" WHERE t.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTrainingNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TrainingRepository) Create(ctx context.Context, training *domain.Training) (*domain.Training, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO trainings (training_date, start_time, end_time, location, training_type, team_id, coach_id)
		VALUES ($1, $2::time, $3::time, $4, $5, $6, $7)
		RETURNING id`,
		training.Date, training.StartTime, nullIfEmpty(training.EndTime),
		training.Location, training.Type, training.TeamID, training.CoachID)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("team or coach does not exist: %w", domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("insert training: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *TrainingRepository) Update(ctx context.Context, training *domain.Training) (*domain.Training, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE trainings
		SET training_date = $1, start_time = $2::time, end_time = $3::time,
		    location = $4, training_type = $5, team_id = $6, coach_id = $7
		WHERE id = $8`,
		training.Date, training.StartTime, nullIfEmpty(training.EndTime),
		training.Location, training.Type, training.TeamID, training.CoachID, training.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("team or coach does not exist: %w", domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("update training: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, domain.ErrTrainingNotFound
	}

	return r.Get(ctx, training.ID)
}

func (r *TrainingRepository) Delete(ctx context.Context, id int64) error {
	label, err := FirstDependent(ctx, r.pool, id, trainingDependents...)
	if err != nil {
		return err
	}
	if label != "" {
		return fmt.Errorf("training already has %s: %w", label, domain.ErrHasDependents)
	}

	res, err := r.pool.Exec(ctx, `DELETE FROM trainings WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("training already has player ratings: %w", domain.ErrHasDependents)
		}
		return fmt.Errorf("delete training: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrTrainingNotFound
	}
	return nil
}

func scanTraining(row pgx.Row) (*domain.Training, error) {
	t := &domain.Training{}
	err := row.Scan(
		&t.ID, &t.Date, &t.StartTime, &t.EndTime,
		&t.Location, &t.Type, &t.TeamID, &t.CoachID,
		&t.TeamName, &t.CoachName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan training: %w", err)
	}
	return t, nil
}

// nullIfEmpty lets empty strings reach nullable columns as SQL NULL.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var _ ports.TrainingRepository = (*TrainingRepository)(nil)
