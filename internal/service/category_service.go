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

// CategoryService provides category operations.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)

	// ListCategoryTasks returns the tasks linked to the category.
	// Returns store.ErrCategoryNotFound if the category does not exist.
	ListCategoryTasks(ctx context.Context, categoryID int64) ([]domain.Task, error)

	// CreateCategory saves a category after checking its owner exists and
	// its name is free.
	CreateCategory(ctx context.Context, category *domain.Category) error

	// UpdateCategory applies the patch. Renaming to the current name succeeds.
	UpdateCategory(ctx context.Context, categoryID int64, patch CategoryPatch) error

	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategoryServiceImpl implements the CategoryService interface
type CategoryServiceImpl struct {
	db            *gorm.DB
	categoryStore store.CategoryStore
	userStore     store.UserStore
	taskStore     store.TaskStore
	logger        *slog.Logger
}

var _ CategoryService = (*CategoryServiceImpl)(nil)

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	db *gorm.DB,
	categoryStore store.CategoryStore,
	userStore store.UserStore,
	taskStore store.TaskStore,
	logger *slog.Logger,
) *CategoryServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryServiceImpl{
		db:            db,
		categoryStore: categoryStore,
		userStore:     userStore,
		taskStore:     taskStore,
		logger:        logger.With("component", "category_service"),
	}
}

func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, categoryID)
	if err != nil {
		logFailure(s.logger, "failed to retrieve category", err, "category_id", categoryID)
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) ListCategoryTasks(ctx context.Context, categoryID int64) ([]domain.Task, error) {
	ok, err := s.categoryStore.Exists(ctx, categoryID)
	if err != nil {
		s.logger.Error("failed to check category existence",
			"error", err,
			"category_id", categoryID)
		return nil, fmt.Errorf("failed to list category tasks: %w", err)
	}
	if !ok {
		return nil, store.ErrCategoryNotFound
	}

	tasks, err := s.taskStore.ListByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error("failed to list category tasks",
			"error", err,
			"category_id", categoryID)
		return nil, fmt.Errorf("failed to list category tasks: %w", err)
	}
	return tasks, nil
}

func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		if err := checkUserExists(ctx, s.userStore.WithTx(tx), category.UserID); err != nil {
			return err
		}

		txStore := s.categoryStore.WithTx(tx)
		if err := checkCategoryNameFree(ctx, txStore, category.Name, 0); err != nil {
			return err
		}
		return translateCategoryError(txStore.Create(ctx, category), category)
	})
	if err != nil {
		logFailure(s.logger, "failed to create category", err, "name", category.Name)
		return err
	}

	s.logger.Info("category created successfully",
		"category_id", category.ID,
		"user_id", category.UserID)
	return nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, categoryID int64, patch CategoryPatch) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		txStore := s.categoryStore.WithTx(tx)

		category, err := txStore.GetByID(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("failed to retrieve category for update: %w", err)
		}

		patch.Apply(category)
		if err := category.Validate(); err != nil {
			return err
		}
		if err := checkCategoryNameFree(ctx, txStore, category.Name, category.ID); err != nil {
			return err
		}
		return translateCategoryError(txStore.Update(ctx, category), category)
	})
	if err != nil {
		logFailure(s.logger, "failed to update category", err, "category_id", categoryID)
		return err
	}

	s.logger.Info("category updated successfully", "category_id", categoryID)
	return nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, categoryID int64) error {
	if err := s.categoryStore.Delete(ctx, categoryID); err != nil {
		logFailure(s.logger, "failed to delete category", err, "category_id", categoryID)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("category deleted successfully", "category_id", categoryID)
	return nil
}

func checkCategoryNameFree(ctx context.Context, categories store.CategoryStore, name string, excludeID int64) error {
	taken, err := categories.NameTaken(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return categoryNameTaken(name)
	}
	return nil
}

func translateCategoryError(err error, category *domain.Category) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCategoryNameExists):
		return categoryNameTaken(category.Name)
	case errors.Is(err, store.ErrInvalidEntity):
		return userMissing(category.UserID)
	default:
		return err
	}
}
