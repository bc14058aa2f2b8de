package store

import (
	"context"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"gorm.io/gorm"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category.
	// Returns ErrCategoryNameExists if the name is already used.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// List returns all categories ordered by ID.
	List(ctx context.Context) ([]domain.Category, error)

	// ListByTask returns the categories assigned to the task ordered by ID.
	ListByTask(ctx context.Context, taskID int64) ([]domain.Category, error)

	// Update writes the name of an existing category.
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category and its task links.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a category with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// CountExisting returns how many of the given IDs belong to existing
	// categories. Callers pass de-duplicated IDs.
	CountExisting(ctx context.Context, ids []int64) (int64, error)

	// NameTaken reports whether a category other than excludeID uses the name.
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)

	// WithTx returns a CategoryStore bound to the given transaction.
	WithTx(tx *gorm.DB) CategoryStore
}
