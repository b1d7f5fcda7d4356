package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-backend/internal/domain/entity"
	repo "github.com/oksasatya/fitness-backend/internal/domain/repository"
	"github.com/oksasatya/fitness-backend/pkg/helpers"
)

var planLevels = map[string]bool{"beginner": true, "intermediate": true, "advanced": true}

// PlanService serves seeded training plans with an optional Redis read cache.
type PlanService struct {
	Repo     repo.TrainingPlanRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewPlanService(r repo.TrainingPlanRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *PlanService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PlanService{Repo: r, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

func planListKey(level string) string { return "plans:list:" + level }
func planKey(idOrSlug string) string  { return "plans:item:" + idOrSlug }

// List returns all plans, optionally filtered by level.
func (s *PlanService) List(ctx context.Context, level string) ([]entity.TrainingPlan, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level != "" && !planLevels[level] {
		return nil, fmt.Errorf("%w: level must be beginner, intermediate or advanced", ErrValidation)
	}

	var cached []entity.TrainingPlan
	if s.cacheGet(ctx, planListKey(level), &cached) {
		return cached, nil
	}

	plans, err := s.Repo.List(ctx, level)
	if err != nil {
		s.Logger.WithError(err).Error("list training plans failed")
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	s.cacheSet(ctx, planListKey(level), plans)
	return plans, nil
}

// Get resolves a plan by id or slug.
func (s *PlanService) Get(ctx context.Context, idOrSlug string) (*entity.TrainingPlan, error) {
	var cached entity.TrainingPlan
	if s.cacheGet(ctx, planKey(idOrSlug), &cached) {
		return &cached, nil
	}

	p, err := s.Repo.Get(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.Logger.WithError(err).WithField("plan", idOrSlug).Error("get training plan failed")
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	s.cacheSet(ctx, planKey(idOrSlug), p)
	return p, nil
}

// cache failures never fail a read
func (s *PlanService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.Redis == nil {
		return false
	}
	var hit bool
	var err error
	switch d := dest.(type) {
	case *[]entity.TrainingPlan:
		hit, err = helpers.RedisGetJSON(ctx, s.Redis, key, d)
	case *entity.TrainingPlan:
		hit, err = helpers.RedisGetJSON(ctx, s.Redis, key, d)
	}
	if err != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis get failed")
		return false
	}
	return hit
}

func (s *PlanService) cacheSet(ctx context.Context, key string, value any) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisSetJSON(ctx, s.Redis, key, value, s.CacheTTL); err != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis set failed")
	}
}
