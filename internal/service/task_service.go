package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"gorm.io/gorm"
)

// TaskService provides task operations, including the links between tasks
// and categories.
type TaskService interface {
	// ListTasks returns one page of tasks matching the query.
	ListTasks(ctx context.Context, query store.TaskQuery) (*store.TaskPage, error)

	// GetTask retrieves a task with its owner and categories.
	GetTask(ctx context.Context, taskID int64) (*domain.Task, error)

	// CreateTask saves a new task linked to the given categories and returns
	// it reloaded with its relations. Repeated category IDs collapse.
	CreateTask(ctx context.Context, task *domain.Task, categoryIDs []int64) (*domain.Task, error)

	// UpdateTask applies the patch to an existing task.
	UpdateTask(ctx context.Context, taskID int64, patch TaskPatch) error

	// DeleteTask deletes a task and its category links.
	DeleteTask(ctx context.Context, taskID int64) error

	// ListTaskCategories returns the categories assigned to the task.
	// Returns store.ErrTaskNotFound if the task does not exist.
	ListTaskCategories(ctx context.Context, taskID int64) ([]domain.Category, error)

	// AssignCategory links a category to a task.
	AssignCategory(ctx context.Context, taskID, categoryID int64) error

	// RemoveCategory unlinks a category from a task.
	// Returns store.ErrTaskCategoryNotFound if they are not linked.
	RemoveCategory(ctx context.Context, taskID, categoryID int64) error
}

// TaskServiceImpl implements the TaskService interface
type TaskServiceImpl struct {
	db                *gorm.DB
	taskStore         store.TaskStore
	userStore         store.UserStore
	categoryStore     store.CategoryStore
	taskCategoryStore store.TaskCategoryStore
	logger            *slog.Logger
}

var _ TaskService = (*TaskServiceImpl)(nil)

// NewTaskService creates a new TaskService
func NewTaskService(
	db *gorm.DB,
	taskStore store.TaskStore,
	userStore store.UserStore,
	categoryStore store.CategoryStore,
	taskCategoryStore store.TaskCategoryStore,
	logger *slog.Logger,
) *TaskServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskServiceImpl{
		db:                db,
		taskStore:         taskStore,
		userStore:         userStore,
		categoryStore:     categoryStore,
		taskCategoryStore: taskCategoryStore,
		logger:            logger.With("component", "task_service"),
	}
}

// ListTasks filters, sorts and pages tasks
func (s *TaskServiceImpl) ListTasks(ctx context.Context, query store.TaskQuery) (*store.TaskPage, error) {
	page, err := s.taskStore.List(ctx, query)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.logger.Debug("listed tasks",
		"total_items", page.TotalItems,
		"returned", len(page.Items))
	return page, nil
}

// GetTask retrieves a task by its ID
func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		logFailure(s.logger, "failed to retrieve task", err, "task_id", taskID)
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}
	return task, nil
}

// CreateTask creates a task and its category links in one transaction
func (s *TaskServiceImpl) CreateTask(
	ctx context.Context,
	task *domain.Task,
	categoryIDs []int64,
) (*domain.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}
	ids := uniqueIDs(categoryIDs)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		if err := checkUserExists(ctx, s.userStore.WithTx(tx), task.UserID); err != nil {
			return err
		}
		if err := checkCategoriesExist(ctx, s.categoryStore.WithTx(tx), ids); err != nil {
			return err
		}
		if err := s.taskStore.WithTx(tx).Create(ctx, task); err != nil {
			return translateReferenceError(err, task.UserID)
		}
		if len(ids) == 0 {
			return nil
		}
		return s.taskCategoryStore.WithTx(tx).Replace(ctx, task.ID, ids)
	})
	if err != nil {
		logFailure(s.logger, "failed to create task", err, "user_id", task.UserID)
		return nil, err
	}

	s.logger.Info("task created successfully",
		"task_id", task.ID,
		"user_id", task.UserID,
		"categories", len(ids))

	created, err := s.taskStore.GetByID(ctx, task.ID)
	if err != nil {
		s.logger.Error("failed to reload created task",
			"error", err,
			"task_id", task.ID)
		return nil, fmt.Errorf("failed to reload created task: %w", err)
	}
	return created, nil
}

// UpdateTask updates the supplied fields of a task
// Following the pattern of getting the complete task first, then applying the changes
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID int64, patch TaskPatch) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		txTasks := s.taskStore.WithTx(tx)

		task, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed to retrieve task for update: %w", err)
		}

		patch.Apply(task)
		if err := task.Validate(); err != nil {
			return err
		}
		if patch.UserID != nil {
			if err := checkUserExists(ctx, s.userStore.WithTx(tx), task.UserID); err != nil {
				return err
			}
		}

		var ids []int64
		if patch.CategoryIDs != nil {
			ids = uniqueIDs(*patch.CategoryIDs)
			if err := checkCategoriesExist(ctx, s.categoryStore.WithTx(tx), ids); err != nil {
				return err
			}
		}

		if err := txTasks.Update(ctx, task); err != nil {
			return translateReferenceError(err, task.UserID)
		}
		if patch.CategoryIDs != nil {
			return s.taskCategoryStore.WithTx(tx).Replace(ctx, task.ID, ids)
		}
		return nil
	})
	if err != nil {
		logFailure(s.logger, "failed to update task", err, "task_id", taskID)
		return err
	}

	s.logger.Info("task updated successfully", "task_id", taskID)
	return nil
}

// DeleteTask deletes a task by its ID
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID int64) error {
	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		logFailure(s.logger, "failed to delete task", err, "task_id", taskID)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("task deleted successfully", "task_id", taskID)
	return nil
}

// ListTaskCategories retrieves the categories of one task
func (s *TaskServiceImpl) ListTaskCategories(ctx context.Context, taskID int64) ([]domain.Category, error) {
	ok, err := s.taskStore.Exists(ctx, taskID)
	if err != nil {
		s.logger.Error("failed to check task existence",
			"error", err,
			"task_id", taskID)
		return nil, fmt.Errorf("failed to list task categories: %w", err)
	}
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	categories, err := s.categoryStore.ListByTask(ctx, taskID)
	if err != nil {
		s.logger.Error("failed to list task categories",
			"error", err,
			"task_id", taskID)
		return nil, fmt.Errorf("failed to list task categories: %w", err)
	}
	return categories, nil
}

// AssignCategory links a category to a task after checking both exist
func (s *TaskServiceImpl) AssignCategory(ctx context.Context, taskID, categoryID int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		ok, err := s.taskStore.WithTx(tx).Exists(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed to check task: %w", err)
		}
		if !ok {
			return newError(ErrReferenceNotFound, "Task with id %d does not exist.", taskID)
		}

		ok, err = s.categoryStore.WithTx(tx).Exists(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if !ok {
			return newError(ErrReferenceNotFound, "Category with id %d does not exist.", categoryID)
		}

		links := s.taskCategoryStore.WithTx(tx)
		ok, err = links.Exists(ctx, taskID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to check assignment: %w", err)
		}
		if ok {
			return errAlreadyAssigned
		}

		if err := links.Assign(ctx, taskID, categoryID); err != nil {
			if errors.Is(err, store.ErrTaskCategoryExists) {
				return errAlreadyAssigned
			}
			return err
		}
		return nil
	})
	if err != nil {
		logFailure(s.logger, "failed to assign category", err,
			"task_id", taskID,
			"category_id", categoryID)
		return err
	}

	s.logger.Info("category assigned to task",
		"task_id", taskID,
		"category_id", categoryID)
	return nil
}

// RemoveCategory unlinks a category from a task
func (s *TaskServiceImpl) RemoveCategory(ctx context.Context, taskID, categoryID int64) error {
	if err := s.taskCategoryStore.Remove(ctx, taskID, categoryID); err != nil {
		logFailure(s.logger, "failed to remove category from task", err,
			"task_id", taskID,
			"category_id", categoryID)
		return fmt.Errorf("failed to remove category from task: %w", err)
	}

	s.logger.Info("category removed from task",
		"task_id", taskID,
		"category_id", categoryID)
	return nil
}

func checkUserExists(ctx context.Context, users store.UserStore, userID int64) error {
	ok, err := users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !ok {
		return userMissing(userID)
	}
	return nil
}

// checkCategoriesExist expects ids without repeats.
func checkCategoriesExist(ctx context.Context, categories store.CategoryStore, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := categories.CountExisting(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to check categories: %w", err)
	}
	if n != int64(len(ids)) {
		return errCategoriesMissing
	}
	return nil
}

// translateReferenceError reports a foreign-key violation on the owner the
// same way the pre-check does. The owner is the only reference a task row has.
func translateReferenceError(err error, userID int64) error {
	if errors.Is(err, store.ErrInvalidEntity) {
		return userMissing(userID)
	}
	return err
}
