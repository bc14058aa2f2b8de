// Package migrations holds the versioned PostgreSQL schema and runs it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var files embed.FS

const (
	// TableName is the table goose records applied versions in.
	TableName = "schema_migrations"

	dir     = "sql"
	dialect = "postgres"
)

// Commands lists the goose commands Run accepts.
var Commands = []string{"up", "up-by-one", "down", "redo", "reset", "status", "version"}

// slogGooseLogger adapts goose logging to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger by forwarding messages to slog at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements goose.Logger by forwarding messages to slog at error level.
// Unlike goose's default it does not exit; the error is returned by Run instead.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// Run executes a goose command against db using the embedded migrations.
func Run(ctx context.Context, db *sql.DB, command string, log *slog.Logger) error {
	if !slices.Contains(Commands, command) {
		return fmt.Errorf("unknown migration command: %s (expected one of %v)", command, Commands)
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	goose.SetLogger(&slogGooseLogger{logger: log})
	goose.SetBaseFS(files)
	goose.SetTableName(TableName)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	start := time.Now()
	log.Info("starting migration command")
	if err := goose.RunContext(ctx, command, db, dir); err != nil {
		log.Error("migration command failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	log.Info("migration command completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
