package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// Category is a named label owned by a user. Names are unique across all users.
type Category struct {
	ID             int64          `gorm:"primaryKey"`
	Name           string         `gorm:"size:100;not null;uniqueIndex"`
	UserID         int64          `gorm:"not null;index"`
	User           *User          `gorm:"constraint:OnDelete:CASCADE"`
	TaskCategories []TaskCategory `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

// NewCategory builds a validated category.
func NewCategory(userID int64, name string) (*Category, error) {
	category := &Category{
		Name:   strings.TrimSpace(name),
		UserID: userID,
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	return category, nil
}

// Validate checks the name and the owner reference.
func (c *Category) Validate() error {
	n := utf8.RuneCountInString(strings.TrimSpace(c.Name))
	if n == 0 {
		return NewValidationError("name", "is required", nil)
	}
	if n > NameMaxLength {
		return NewValidationError("name", "must be at most 100 characters", nil)
	}
	if c.UserID <= 0 {
		return NewValidationError("user_id", "is required", ErrInvalidID)
	}
	return nil
}

// TaskCategory links a task to a category. The (TaskID, CategoryID) pair is
// the primary key, so a category is assigned to a task at most once.
type TaskCategory struct {
	TaskID     int64     `gorm:"primaryKey;autoIncrement:false"`
	CategoryID int64     `gorm:"primaryKey;autoIncrement:false;index"`
	AssignedAt time.Time `gorm:"not null"`
	Task       *Task     `gorm:"constraint:OnDelete:CASCADE"`
	Category   *Category `gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeCreate stamps AssignedAt when the caller left it empty.
func (tc *TaskCategory) BeforeCreate(*gorm.DB) error {
	if tc.AssignedAt.IsZero() {
		tc.AssignedAt = time.Now().UTC()
	}
	return nil
}
