package store

import (
	"context"

	"gorm.io/gorm"
)

// TaskCategoryStore manages the links between tasks and categories.
type TaskCategoryStore interface {
	// Assign links the category to the task.
	// Returns ErrTaskCategoryExists if the link already exists.
	Assign(ctx context.Context, taskID, categoryID int64) error

	// Remove deletes the link.
	// Returns ErrTaskCategoryNotFound if the link does not exist.
	Remove(ctx context.Context, taskID, categoryID int64) error

	// Exists reports whether the category is assigned to the task.
	Exists(ctx context.Context, taskID, categoryID int64) (bool, error)

	// Replace makes categoryIDs the exact set of categories of the task.
	Replace(ctx context.Context, taskID int64, categoryIDs []int64) error

	// WithTx returns a TaskCategoryStore bound to the given transaction.
	WithTx(tx *gorm.DB) TaskCategoryStore
}
