// Package main implements the entry point for the Taskwell API server,
// a multi-tenant task tracker with JWT-authenticated per-user task CRUD.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, wires the application and serves until a
// shutdown signal arrives. Kept separate from main so all paths return
// errors instead of calling os.Exit directly.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"dev_mode", cfg.Server.DevMode)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if cfg.Server.DevMode {
		if err := runMigrations(db, appLogger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := context.Background()
	if err := app.Run(ctx); err != nil {
		return err
	}

	return nil
}
