package gormstore

import (
	"testing"
	"time"

	"github.com/PajaGos/To-Do-REST-API/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "todo.db?_pragma=foreign_keys(1)", withForeignKeys("todo.db"))
	assert.Equal(t,
		"file:todo.db?cache=shared&_pragma=foreign_keys(1)",
		withForeignKeys("file:todo.db?cache=shared"))
	assert.Equal(t,
		"file::memory:?_pragma=foreign_keys(1)",
		withForeignKeys("file::memory:?_pragma=foreign_keys(1)"))
}

func TestIsInMemory(t *testing.T) {
	assert.True(t, isInMemory(":memory:"))
	assert.True(t, isInMemory("file:test?mode=memory&cache=shared"))
	assert.False(t, isInMemory("data/todo.db"))
}

func TestConfigurePool(t *testing.T) {
	var maxOpen, maxIdle int
	var lifetime time.Duration = -1
	record := func(cfg config.DatabaseConfig) {
		maxOpen, maxIdle, lifetime = 0, 0, -1
		configurePool(cfg,
			func(n int) { maxOpen = n },
			func(n int) { maxIdle = n },
			func(d time.Duration) { lifetime = d })
	}

	record(config.DatabaseConfig{Driver: config.DriverSQLite, URL: ":memory:", MaxOpenConns: 10})
	assert.Equal(t, 1, maxOpen)
	assert.Equal(t, 1, maxIdle)
	assert.Equal(t, time.Duration(0), lifetime)

	record(config.DatabaseConfig{
		Driver:                 config.DriverPostgres,
		URL:                    "postgres://localhost/todo",
		MaxOpenConns:           20,
		MaxIdleConns:           4,
		ConnMaxLifetimeMinutes: 3,
	})
	assert.Equal(t, 20, maxOpen)
	assert.Equal(t, 4, maxIdle)
	assert.Equal(t, 3*time.Minute, lifetime)
}

func TestNewDialectorUnsupported(t *testing.T) {
	_, err := newDialector(config.DatabaseConfig{Driver: "mysql", URL: "x"})
	assert.ErrorContains(t, err, "unsupported database driver")

	d, err := newDialector(config.DatabaseConfig{Driver: config.DriverPostgres, URL: "postgres://localhost/todo"})
	assert.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = newDialector(config.DatabaseConfig{Driver: config.DriverSQLite, URL: ":memory:"})
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}
