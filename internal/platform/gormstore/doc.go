// Package gormstore implements the store interfaces on top of gorm.
//
// The same code runs against PostgreSQL (gorm.io/driver/postgres over pgx)
// in production and against SQLite (gorm.io/driver/sqlite over the pure-Go
// modernc.org/sqlite driver) for local development and tests. Driver errors
// from either database are translated into the sentinel errors of
// internal/store by MapError.
package gormstore
