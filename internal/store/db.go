package store

import "context"

// Pinger reports whether the underlying database is reachable.
// It is satisfied by *sql.DB and used by the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}
