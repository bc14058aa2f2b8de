package store

import (
	"context"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"gorm.io/gorm"
)

// TaskStore defines the interface for task data persistence.
// Tasks returned by the read methods carry their owner and their
// categories (TaskCategories with Category loaded).
type TaskStore interface {
	// Create saves a new task along with any TaskCategories it carries.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List returns one page of tasks matching the query together with the
	// total number of matches.
	List(ctx context.Context, query TaskQuery) (*TaskPage, error)

	// ListByUser returns every task owned by the user ordered by ID.
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)

	// ListByCategory returns every task linked to the category ordered by ID.
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Task, error)

	// Update writes the scalar fields of an existing task. Category links are
	// managed through TaskCategoryStore.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task and its category links.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a task with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// WithTx returns a TaskStore bound to the given transaction.
	WithTx(tx *gorm.DB) TaskStore
}
