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

// TaskStore implements store.TaskStore with gorm.
type TaskStore struct {
	db *gorm.DB
}

// NewTaskStore creates a TaskStore. The caller owns the connection.
func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

var _ store.TaskStore = (*TaskStore)(nil)

// WithTx implements store.TaskStore.
func (s *TaskStore) WithTx(tx *gorm.DB) store.TaskStore {
	return &TaskStore{db: tx}
}

// withRelations preloads the owner and the categories of each task.
func withRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("User").
		Preload("TaskCategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_id")
		}).
		Preload("TaskCategories.Category")
}

// Create implements store.TaskStore. Category links are written by
// TaskCategoryStore so they can be validated first.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		return mapTaskError(err)
	}
	return nil
}

// GetByID implements store.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var task domain.Task
	if err := withRelations(s.db.WithContext(ctx)).First(&task, id).Error; err != nil {
		return nil, mapTaskError(err)
	}
	return &task, nil
}

// List implements store.TaskStore.
func (s *TaskStore) List(ctx context.Context, query store.TaskQuery) (*store.TaskPage, error) {
	q := query.Normalized()

	filtered := s.db.WithContext(ctx).Model(&domain.Task{})
	if q.UserID != nil {
		filtered = filtered.Where("tasks.user_id = ?", *q.UserID)
	}
	if q.CategoryName != "" {
		linked := s.db.Table("task_categories").
			Select("1").
			Joins("JOIN categories ON categories.id = task_categories.category_id").
			Where("task_categories.task_id = tasks.id").
			Where("categories.name = ?", q.CategoryName)
		filtered = filtered.Where("EXISTS (?)", linked)
	}
	// Reusable from here on: Count must not leak into the page query.
	filtered = filtered.Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, MapError(err)
	}

	page := &store.TaskPage{Items: []domain.Task{}, TotalItems: total}
	if total == 0 || int64(q.Offset()) >= total {
		return page, nil
	}

	ordered := withRelations(filtered)
	for _, order := range orderBy(q) {
		ordered = ordered.Order(order)
	}
	if err := ordered.Offset(q.Offset()).Limit(q.PageSize).Find(&page.Items).Error; err != nil {
		return nil, MapError(err)
	}
	return page, nil
}

// orderBy returns the ORDER BY terms for the query. The task ID always comes
// last so pages are stable; tasks without a due date sort after dated ones
// in both directions.
func orderBy(q store.TaskQuery) []interface{} {
	column := func(name string, desc bool) clause.OrderByColumn {
		return clause.OrderByColumn{Column: clause.Column{Table: "tasks", Name: name}, Desc: desc}
	}

	var terms []interface{}
	switch q.SortBy {
	case store.SortByTitle:
		terms = append(terms, column("title", q.Descending))
	case store.SortByPriority:
		terms = append(terms, column("priority", q.Descending))
	case store.SortByDueDate:
		terms = append(terms, "tasks.due_date IS NULL", column("due_date", q.Descending))
	}
	return append(terms, column("id", false))
}

// ListByUser implements store.TaskStore.
func (s *TaskStore) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	var tasks []domain.Task
	err := withRelations(s.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, MapError(err)
	}
	return tasks, nil
}

// ListByCategory implements store.TaskStore.
func (s *TaskStore) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Task, error) {
	linked := s.db.Table("task_categories").
		Select("task_id").
		Where("category_id = ?", categoryID)

	var tasks []domain.Task
	err := withRelations(s.db.WithContext(ctx)).
		Where("id IN (?)", linked).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, MapError(err)
	}
	return tasks, nil
}

// Update implements store.TaskStore.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	task.UpdatedAt = s.db.NowFunc()
	res := s.db.WithContext(ctx).
		Model(&domain.Task{ID: task.ID}).
		Select("title", "description", "is_completed", "priority", "due_date", "user_id", "updated_at").
		Omit(clause.Associations).
		Updates(&domain.Task{
			Title:       task.Title,
			Description: task.Description,
			IsCompleted: task.IsCompleted,
			Priority:    task.Priority,
			DueDate:     task.DueDate,
			UserID:      task.UserID,
			UpdatedAt:   task.UpdatedAt,
		})
	if res.Error != nil {
		return mapTaskError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// Delete implements store.TaskStore.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.Task{}, id)
	if res.Error != nil {
		return MapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// Exists implements store.TaskStore.
func (s *TaskStore) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(s.db.WithContext(ctx).Model(&domain.Task{}).Where("id = ?", id))
}

func mapTaskError(err error) error {
	mapped := MapError(err)
	if errors.Is(mapped, store.ErrNotFound) {
		return fmt.Errorf("%w: %v", store.ErrTaskNotFound, err)
	}
	return mapped
}
