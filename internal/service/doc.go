// Package service contains the use cases of the to-do API. It sits between
// the HTTP handlers in internal/api and the repositories defined in
// internal/store.
//
// Services own the rules that the database alone cannot express with a
// useful message:
//
//   - Existence checks for referenced entities (a task's owner, the
//     categories being linked) reported as ErrReferenceNotFound.
//   - Uniqueness checks for usernames, emails and category names reported
//     as ErrConflict.
//   - Transaction boundaries for operations that touch several tables,
//     such as creating a task together with its category links.
//
// Rule violations are returned as *Error, whose Message is written for
// clients. Missing entities addressed directly by a request are returned
// as store not-found errors. Unique-index violations that slip past a
// pre-check (concurrent writers) are translated to the same *Error the
// pre-check would have produced.
//
// Services receive store interfaces and the *gorm.DB used to open
// transactions through constructor injection and never depend on a
// concrete store implementation.
package service
