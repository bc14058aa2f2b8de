package gormstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PajaGos/To-Do-REST-API/internal/config"
	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" database/sql driver used by the sqlite dialector.
	_ "modernc.org/sqlite"
)

// sqliteDriverName is the database/sql name modernc.org/sqlite registers.
const sqliteDriverName = "sqlite"

// Models lists every persisted type, parents before children.
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Category{},
		&domain.Task{},
		&domain.TaskCategory{},
	}
}

// Open connects to the configured database, applies the pool settings and,
// when cfg.AutoMigrate is set, creates or updates the schema from the models.
func Open(cfg config.DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	if log == nil {
		log = slog.Default()
	}

	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	slow := time.Duration(cfg.SlowQueryThresholdMs) * time.Millisecond
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log, slow),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	configurePool(cfg, sqlDB.SetMaxOpenConns, sqlDB.SetMaxIdleConns, sqlDB.SetConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info("database schema auto-migrated", "driver", cfg.Driver)
	}

	return db, nil
}

// AutoMigrate creates missing tables, columns, indexes and constraints.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.URL), nil
	case config.DriverSQLite:
		if err := ensureDirForSQLite(cfg.URL); err != nil {
			return nil, err
		}
		return sqlite.New(sqlite.Config{
			DriverName: sqliteDriverName,
			DSN:        withForeignKeys(cfg.URL),
		}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// configurePool applies the pool limits. In-memory SQLite databases live
// only as long as their connection, so they are pinned to one connection
// that is never recycled.
func configurePool(
	cfg config.DatabaseConfig,
	setMaxOpen func(int),
	setMaxIdle func(int),
	setLifetime func(time.Duration),
) {
	if cfg.Driver == config.DriverSQLite && isInMemory(cfg.URL) {
		setMaxOpen(1)
		setMaxIdle(1)
		setLifetime(0)
		return
	}
	if cfg.MaxOpenConns > 0 {
		setMaxOpen(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		setMaxIdle(cfg.MaxIdleConns)
	}
	setLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
}

func isInMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// withForeignKeys turns on foreign key enforcement, which SQLite leaves off
// by default and the cascading deletes depend on.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// ensureDirForSQLite creates the parent directory of a SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if isInMemory(dsn) {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
