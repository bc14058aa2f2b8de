// Package domain contains the core business entities of the to-do service:
// users, their tasks and categories, and the links between tasks and
// categories. The types double as the persisted ORM models, so their gorm
// tags describe the relational schema used by internal/platform/gormstore.
package domain
