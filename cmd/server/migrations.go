package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PajaGos/To-Do-REST-API/internal/config"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/gormstore"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/migrations"
)

// runMigrations applies a goose command to the configured database.
// Versioned migrations are written for PostgreSQL; SQLite databases are
// created through auto-migration instead.
func runMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf(
			"migrations require the %s driver, got %q (use auto_migrate for %s)",
			config.DriverPostgres,
			cfg.Database.Driver,
			config.DriverSQLite,
		)
	}

	dbCfg := cfg.Database
	dbCfg.AutoMigrate = false

	db, err := gormstore.Open(dbCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := gormstore.Close(db); err != nil {
			logger.Error("Failed to close database connection", "error", err)
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}

	return migrations.Run(ctx, sqlDB, command, logger)
}
