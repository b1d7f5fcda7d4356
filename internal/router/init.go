package router

import (
	"github.com/oksasatya/fitness-backend/internal/application"
	"github.com/oksasatya/fitness-backend/internal/container"
	pginfra "github.com/oksasatya/fitness-backend/internal/infrastructure/postgres"
	"github.com/oksasatya/fitness-backend/internal/infrastructure/search"
	handlers "github.com/oksasatya/fitness-backend/internal/interface/http"
	"github.com/oksasatya/fitness-backend/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	svc := application.NewAuthService(pginfra.NewUserRepository(container.GetPGPool()), container.GetTokens(), logger)
	if pub := container.GetRabbitPub(); pub != nil {
		svc.WithWelcomeMail(pub, cfg.AppName, cfg.SupportURL)
	}
	return modules.NewAuthModule(handlers.NewAuthHandler(svc, logger), container.GetTokens())
}

func buildExerciseModule() *modules.ExerciseModule {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	var searcher application.ExerciseSearcher
	if es := container.GetES(); es != nil {
		searcher = search.NewExerciseIndex(es, cfg.ESExercisesIndex)
	}
	svc := application.NewExerciseService(container.GetExercises(), searcher, logger)
	return modules.NewExerciseModule(handlers.NewExerciseHandler(svc, logger))
}

func buildPlanModule() *modules.PlanModule {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	svc := application.NewPlanService(
		pginfra.NewTrainingPlanRepository(container.GetPGPool()),
		container.GetRedis(),
		cfg.PlansCacheTTL,
		logger,
	)
	return modules.NewPlanModule(handlers.NewPlanHandler(svc, logger))
}

// InitModules wires every feature module from the container singletons.
// Call once during startup after the container is populated.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildPlanModule())
	r.AddRoot(buildExerciseModule())

	var db handlers.Pinger
	if pool := container.GetPGPool(); pool != nil {
		db = pool
	}
	r.AddRoot(modules.NewHealthModule(handlers.NewHealthHandler(db)))
}
