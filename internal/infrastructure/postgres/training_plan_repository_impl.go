package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
	"github.com/oksasatya/fitness-backend/internal/domain/repository"
)

const planColumns = `id, slug, title, description, level, goal, duration_weeks, days_per_week, workouts, created_at, updated_at`

type TrainingPlanRepository struct {
	db DBTX
}

func NewTrainingPlanRepository(db DBTX) *TrainingPlanRepository {
	return &TrainingPlanRepository{db: db}
}

func (r *TrainingPlanRepository) List(ctx context.Context, level string) ([]entity.TrainingPlan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+planColumns+`
		FROM training_plans
		WHERE ($1 = '' OR level = $1)
		ORDER BY duration_weeks, title
	`, level)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	plans := make([]entity.TrainingPlan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		plans = append(plans, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return plans, nil
}

func (r *TrainingPlanRepository) Get(ctx context.Context, idOrSlug string) (*entity.TrainingPlan, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+planColumns+`
		FROM training_plans
		WHERE id::text = $1 OR slug = $1
		LIMIT 1
	`, idOrSlug)
	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// Upsert inserts or replaces a plan keyed by slug and fills in ID and timestamps.
func (r *TrainingPlanRepository) Upsert(ctx context.Context, p *entity.TrainingPlan) error {
	workouts, err := json.Marshal(p.Workouts)
	if err != nil {
		return err
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO training_plans (slug, title, description, level, goal, duration_weeks, days_per_week, workouts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			level = EXCLUDED.level,
			goal = EXCLUDED.goal,
			duration_weeks = EXCLUDED.duration_weeks,
			days_per_week = EXCLUDED.days_per_week,
			workouts = EXCLUDED.workouts,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`, p.Slug, p.Title, p.Description, p.Level, p.Goal, p.DurationWeeks, p.DaysPerWeek, json.RawMessage(workouts))
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func scanPlan(row pgx.Row) (*entity.TrainingPlan, error) {
	p := &entity.TrainingPlan{}
	var workouts []byte
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Description, &p.Level, &p.Goal,
		&p.DurationWeeks, &p.DaysPerWeek, &workouts, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if len(workouts) > 0 {
		if err := json.Unmarshal(workouts, &p.Workouts); err != nil {
			return nil, fmt.Errorf("decode workouts: %w", err)
		}
	}
	if p.Workouts == nil {
		p.Workouts = []entity.PlanWorkout{}
	}
	return p, nil
}

var _ repository.TrainingPlanRepository = (*TrainingPlanRepository)(nil)
