package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-backend/config"
	"github.com/oksasatya/fitness-backend/internal/domain/entity"
	"github.com/oksasatya/fitness-backend/internal/domain/repository"
	pginfra "github.com/oksasatya/fitness-backend/internal/infrastructure/postgres"
	"github.com/oksasatya/fitness-backend/pkg/helpers"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@fitness.local"
	demoPassword = "password123"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	if cfg.DatabaseURL == "" {
		logger.WithError(config.ErrMissingDatabaseURL).Fatal("cannot seed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pool.Close()

	raw, err := os.ReadFile(cfg.SeedPlansFile)
	if err != nil {
		logger.WithError(err).Fatal("failed to read training plans")
	}
	var plans []entity.TrainingPlan
	if err := json.Unmarshal(raw, &plans); err != nil {
		logger.WithError(err).Fatal("failed to parse training plans")
	}

	plansRepo := pginfra.NewTrainingPlanRepository(pool)
	for i := range plans {
		if err := plansRepo.Upsert(ctx, &plans[i]); err != nil {
			logger.WithError(err).WithField("slug", plans[i].Slug).Fatal("failed to upsert training plan")
		}
		logger.WithField("slug", plans[i].Slug).WithField("id", plans[i].ID).Info("seeded training plan")
	}

	if _, err := seedDemoUser(ctx, pginfra.NewUserRepository(pool), logger); err != nil {
		logger.WithError(err).Fatal("failed to seed demo user")
	}
}

// seedDemoUser creates the demo account once. The password is never logged.
func seedDemoUser(ctx context.Context, users repository.UserRepository, logger *logrus.Logger) (*entity.User, error) {
	if u, err := users.FindByEmail(ctx, demoEmail); err == nil {
		logger.WithField("id", u.ID).Info("demo user already present")
		return u, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}
	u, err := users.Create(ctx, demoUsername, demoEmail, hash)
	if err != nil {
		return nil, err
	}
	logger.WithField("id", u.ID).WithField("email", demoEmail).Info("seeded demo user")
	return u, nil
}
