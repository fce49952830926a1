package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/platform/postgres"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// application holds the shared application dependencies so wiring and
// cleanup happen in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService auth.JWTService
	hasher     *auth.BcryptHasher

	healthChecker *postgres.HealthChecker
}

// newApplication creates an application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before wiring: configuration, logger and a live database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT service initialized",
		"algorithm", cfg.Auth.JWTAlgorithm,
		"token_expiry_hours", cfg.Auth.TokenExpiryHours)

	app.hasher = auth.NewBcryptHasher(bcrypt.DefaultCost)

	app.userStore = postgres.NewUserStore(db)
	app.taskStore = postgres.NewTaskStore(db)
	app.healthChecker = postgres.NewHealthChecker(db)

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until shutdown, then releases resources.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
