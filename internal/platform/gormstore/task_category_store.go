package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"gorm.io/gorm"
)

// TaskCategoryStore implements store.TaskCategoryStore with gorm.
type TaskCategoryStore struct {
	db *gorm.DB
}

// NewTaskCategoryStore creates a TaskCategoryStore. The caller owns the connection.
func NewTaskCategoryStore(db *gorm.DB) *TaskCategoryStore {
	return &TaskCategoryStore{db: db}
}

var _ store.TaskCategoryStore = (*TaskCategoryStore)(nil)

// WithTx implements store.TaskCategoryStore.
func (s *TaskCategoryStore) WithTx(tx *gorm.DB) store.TaskCategoryStore {
	return &TaskCategoryStore{db: tx}
}

// Assign implements store.TaskCategoryStore.
func (s *TaskCategoryStore) Assign(ctx context.Context, taskID, categoryID int64) error {
	link := &domain.TaskCategory{TaskID: taskID, CategoryID: categoryID}
	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrDuplicate) {
			return fmt.Errorf("%w: %v", store.ErrTaskCategoryExists, err)
		}
		return mapped
	}
	return nil
}

// Remove implements store.TaskCategoryStore.
func (s *TaskCategoryStore) Remove(ctx context.Context, taskID, categoryID int64) error {
	res := s.db.WithContext(ctx).
		Where("task_id = ? AND category_id = ?", taskID, categoryID).
		Delete(&domain.TaskCategory{})
	if res.Error != nil {
		return MapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrTaskCategoryNotFound
	}
	return nil
}

// Exists implements store.TaskCategoryStore.
func (s *TaskCategoryStore) Exists(ctx context.Context, taskID, categoryID int64) (bool, error) {
	return exists(s.db.WithContext(ctx).
		Model(&domain.TaskCategory{}).
		Where("task_id = ? AND category_id = ?", taskID, categoryID))
}

// Replace implements store.TaskCategoryStore. Links that are kept retain
// their original AssignedAt. Run it inside a transaction.
func (s *TaskCategoryStore) Replace(ctx context.Context, taskID int64, categoryIDs []int64) error {
	db := s.db.WithContext(ctx)

	stale := db.Where("task_id = ?", taskID)
	if len(categoryIDs) > 0 {
		stale = stale.Where("category_id NOT IN ?", categoryIDs)
	}
	if err := stale.Delete(&domain.TaskCategory{}).Error; err != nil {
		return MapError(err)
	}

	var kept []int64
	err := db.Model(&domain.TaskCategory{}).
		Where("task_id = ?", taskID).
		Pluck("category_id", &kept).Error
	if err != nil {
		return MapError(err)
	}

	have := make(map[int64]bool, len(kept))
	for _, id := range kept {
		have[id] = true
	}
	var links []domain.TaskCategory
	for _, id := range categoryIDs {
		if !have[id] {
			have[id] = true
			links = append(links, domain.TaskCategory{TaskID: taskID, CategoryID: id})
		}
	}
	if len(links) == 0 {
		return nil
	}
	if err := db.Create(&links).Error; err != nil {
		return MapError(err)
	}
	return nil
}
