package testdb

import (
	"io"
	"log/slog"
	"testing"

	"github.com/PajaGos/To-Do-REST-API/internal/config"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/gormstore"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MemoryDSN is an in-memory SQLite database with foreign keys enforced.
const MemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// Config returns the database settings used by New.
func Config() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		URL:         MemoryDSN,
		AutoMigrate: true,
	}
}

// New opens a fresh migrated in-memory database and closes it on cleanup.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := gormstore.Open(Config(), quiet)
	require.NoError(t, err, "Failed to open test database")

	t.Cleanup(func() {
		if err := gormstore.Close(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})
	return db
}

// WithTx executes fn within a transaction and rolls it back afterwards,
// leaving the database untouched for the rest of the test.
func WithTx(t *testing.T, db *gorm.DB, fn func(t *testing.T, tx *gorm.DB)) {
	t.Helper()

	tx := db.Begin()
	require.NoError(t, tx.Error, "Failed to begin transaction")
	defer func() {
		if err := tx.Rollback().Error; err != nil {
			t.Logf("rollback failed: %v", err)
		}
	}()

	fn(t, tx)
}
