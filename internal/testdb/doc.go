// Package testdb provides database fixtures for tests.
//
// New returns an isolated, fully migrated in-memory SQLite database, so
// store, service and router tests run without any external service. Each
// call gets its own database that disappears when the test ends.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.New(t)
//	    users := gormstore.NewUserStore(db)
//	    ...
//	}
//
// WithTx runs a test body inside a transaction that is always rolled back.
package testdb
