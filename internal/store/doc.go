// Package store defines interfaces for data persistence operations.
// These interfaces abstract the ORM-backed implementation in
// internal/platform/gormstore from the services, which depend only on the
// contracts and sentinel errors declared here.
package store
