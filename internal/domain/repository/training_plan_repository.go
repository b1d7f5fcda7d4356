package repository

import (
	"context"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
)

// TrainingPlanRepository reads seeded training plans.
type TrainingPlanRepository interface {
	// List returns all plans, optionally narrowed to one level ("" for all).
	List(ctx context.Context, level string) ([]entity.TrainingPlan, error)
	// Get resolves a plan by id or slug.
	Get(ctx context.Context, idOrSlug string) (*entity.TrainingPlan, error)
	Upsert(ctx context.Context, p *entity.TrainingPlan) error
}
