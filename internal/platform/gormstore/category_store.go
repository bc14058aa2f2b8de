package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryStore implements store.CategoryStore with gorm.
type CategoryStore struct {
	db *gorm.DB
}

// NewCategoryStore creates a CategoryStore. The caller owns the connection.
func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// WithTx implements store.CategoryStore.
func (s *CategoryStore) WithTx(tx *gorm.DB) store.CategoryStore {
	return &CategoryStore{db: tx}
}

// Create implements store.CategoryStore.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error; err != nil {
		return mapCategoryError(err)
	}
	return nil
}

// GetByID implements store.CategoryStore.
func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, mapCategoryError(err)
	}
	return &category, nil
}

// List implements store.CategoryStore.
func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, MapError(err)
	}
	return categories, nil
}

// ListByTask implements store.CategoryStore.
func (s *CategoryStore) ListByTask(ctx context.Context, taskID int64) ([]domain.Category, error) {
	linked := s.db.Table("task_categories").
		Select("category_id").
		Where("task_id = ?", taskID)

	var categories []domain.Category
	err := s.db.WithContext(ctx).
		Where("id IN (?)", linked).
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, MapError(err)
	}
	return categories, nil
}

// Update implements store.CategoryStore.
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).
		Model(&domain.Category{ID: category.ID}).
		Select("name", "updated_at").
		Updates(&domain.Category{
			Name:      category.Name,
			UpdatedAt: s.db.NowFunc(),
		})
	if res.Error != nil {
		return mapCategoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}

// Delete implements store.CategoryStore.
func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if res.Error != nil {
		return MapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}

// Exists implements store.CategoryStore.
func (s *CategoryStore) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(s.db.WithContext(ctx).Model(&domain.Category{}).Where("id = ?", id))
}

// CountExisting implements store.CategoryStore.
func (s *CategoryStore) CountExisting(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&domain.Category{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return 0, MapError(err)
	}
	return n, nil
}

// NameTaken implements store.CategoryStore.
func (s *CategoryStore) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	q := s.db.WithContext(ctx).Model(&domain.Category{}).Where("name = ?", name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return exists(q)
}

func mapCategoryError(err error) error {
	mapped := MapError(err)
	switch {
	case errors.Is(mapped, store.ErrDuplicate):
		return fmt.Errorf("%w: %v", store.ErrCategoryNameExists, err)
	case errors.Is(mapped, store.ErrNotFound):
		return fmt.Errorf("%w: %v", store.ErrCategoryNotFound, err)
	default:
		return mapped
	}
}
