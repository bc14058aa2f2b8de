package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Task is a to-do item owned by a user and linked to any number of categories.
type Task struct {
	ID             int64          `gorm:"primaryKey"`
	Title          string         `gorm:"size:100;not null"`
	Description    string         `gorm:"not null;default:''"`
	IsCompleted    bool           `gorm:"not null;default:false"`
	Priority       Priority       `gorm:"not null;index"`
	DueDate        *time.Time     `gorm:"index"`
	UserID         int64          `gorm:"not null;index"`
	User           *User          `gorm:"constraint:OnDelete:CASCADE"`
	TaskCategories []TaskCategory `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

// NewTask builds a validated task with the default priority.
func NewTask(userID int64, title string) (*Task, error) {
	task := &Task{
		Title:    strings.TrimSpace(title),
		Priority: DefaultPriority,
		UserID:   userID,
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

// Validate checks the title, the owner reference and the priority.
func (t *Task) Validate() error {
	n := utf8.RuneCountInString(strings.TrimSpace(t.Title))
	if n == 0 {
		return NewValidationError("title", "is required", nil)
	}
	if n > TitleMaxLength {
		return NewValidationError("title", "must be at most 100 characters", nil)
	}
	if t.UserID <= 0 {
		return NewValidationError("user_id", "is required", ErrInvalidID)
	}
	if !t.Priority.IsValid() {
		return NewValidationError("priority", "must be Low, Medium or High", ErrInvalidPriority)
	}
	return nil
}

// CategoryIDs returns the IDs of the linked categories in link order.
func (t *Task) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(t.TaskCategories))
	for _, tc := range t.TaskCategories {
		ids = append(ids, tc.CategoryID)
	}
	return ids
}

// Categories returns the preloaded categories of the task. Links whose
// category was not loaded are skipped.
func (t *Task) Categories() []Category {
	categories := make([]Category, 0, len(t.TaskCategories))
	for _, tc := range t.TaskCategories {
		if tc.Category != nil {
			categories = append(categories, *tc.Category)
		}
	}
	return categories
}
