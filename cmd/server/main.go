// Package main implements the entry point for the to-do API server, which
// serves users, tasks and categories over HTTP and can also apply the
// versioned database migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/PajaGos/To-Do-REST-API/internal/config"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"Run database migrations instead of the server (up, up-by-one, down, redo, reset, status, version)",
	)
	flag.Parse()

	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *migrateCmd != "" {
		if err := runMigrations(ctx, cfg, *migrateCmd, appLogger); err != nil {
			appLogger.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error("Server terminated with error", "error", err)
		os.Exit(1)
	}
}

// run opens the database, builds the application and serves until ctx is done.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return err
	}

	app := newApplication(cfg, log, db)
	return app.Run(ctx)
}

// loadAppConfig loads the configuration and logs the values worth knowing at startup.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)
	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	}

	return cfg, nil
}
