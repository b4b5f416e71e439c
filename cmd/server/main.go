package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"configurateur-be/internal/api"
	"configurateur-be/internal/catalog"
	"configurateur-be/internal/config"
	"configurateur-be/internal/db"
	"configurateur-be/internal/logger"
	"configurateur-be/internal/middleware"
	"configurateur-be/internal/pricing"
	"configurateur-be/internal/project"
	"configurateur-be/internal/quote"

	"go.uber.org/zap"
)

// seams for tests
var (
	initDBFunc      = db.NewDatabase
	startServerFunc = http.ListenAndServe
)

// buildHandler wires the services and the middleware chain around the
// router. Settings are loaded once at startup; the bundle is immutable
// for the process lifetime, matching the once-per-session contract.
func buildHandler(cfg *config.Config, settings *catalog.Settings, database *sql.DB) http.Handler {
	calc := pricing.NewCalculator(settings, cfg.TaxRate)

	quoteRepo := quote.NewRepository(database)
	quoteSvc := quote.NewService(quoteRepo, settings, calc)

	projectRepo := project.NewRepository(database)
	projectSvc := project.NewService(projectRepo, settings)

	env := &api.Env{
		Settings:   settings,
		Calc:       calc,
		QuoteSvc:   quoteSvc,
		ProjectSvc: projectSvc,

		JWTSecret:         cfg.JWTSecret,
		AdminEmail:        cfg.AdminEmail,
		AdminPasswordHash: cfg.AdminPasswordHash,
	}

	var handler http.Handler = api.NewRouter(env)
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.AuthMiddleware(cfg.JWTSecret)(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	return handler
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := initDBFunc(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	catalogSvc := catalog.NewService(catalog.NewRepository(database))
	settings, err := catalogSvc.GetSettings(context.Background())
	if err != nil {
		return err
	}

	handler := buildHandler(cfg, settings, database)

	logger.L().Info("configurator API listening",
		zap.String("port", cfg.AppPort),
		zap.Float64("tax_rate", cfg.TaxRate),
		zap.Int("product_types", len(settings.ProductTypes)),
	)

	return startServerFunc(":"+cfg.AppPort, handler)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
