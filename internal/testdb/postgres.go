package testdb

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/PajaGos/To-Do-REST-API/internal/config"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/gormstore"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/migrations"
	"github.com/PajaGos/To-Do-REST-API/internal/redact"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Environment variables naming a PostgreSQL database for integration tests,
// in order of preference.
const (
	EnvTestDatabaseURL = "TODO_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// PostgresURL returns the first configured integration database URL, or "".
func PostgresURL() string {
	for _, key := range []string{EnvTestDatabaseURL, EnvDatabaseURL} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// NewPostgres connects to the integration database, brings its schema up to
// date with the versioned migrations and empties every table. The test is
// skipped when no database URL is configured.
func NewPostgres(t testing.TB) *gorm.DB {
	t.Helper()

	url := PostgresURL()
	if url == "" {
		t.Skipf("%s not set, skipping PostgreSQL integration test", EnvTestDatabaseURL)
	}
	t.Logf("using integration database %s", redact.String(url))

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := gormstore.Open(config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		URL:          url,
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	}, quiet)
	require.NoError(t, err, "Failed to open integration database")
	t.Cleanup(func() {
		if err := gormstore.Close(db); err != nil {
			t.Logf("failed to close integration database: %v", err)
		}
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, migrations.Run(context.Background(), sqlDB, "up", quiet), "Failed to apply migrations")

	require.NoError(t,
		db.Exec("TRUNCATE task_categories, tasks, categories, users RESTART IDENTITY CASCADE").Error,
		"Failed to reset tables")

	return db
}
