package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PajaGos/To-Do-REST-API/internal/config"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/gormstore"
	"gorm.io/gorm"
)

// pingTimeout bounds the connectivity check made at startup.
const pingTimeout = 5 * time.Second

// setupAppDatabase opens the configured database and verifies it is reachable.
func setupAppDatabase(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gormstore.Open(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established",
		"driver", cfg.Database.Driver,
		"auto_migrate", cfg.Database.AutoMigrate)
	return db, nil
}
