package api

import (
	"time"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
)

// Request payloads. Update requests use pointers: a field left out of the
// JSON body is nil and leaves the stored value unchanged.

// CreateUserRequest defines the payload for POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email"    validate:"required,email,max=255"`
}

// UpdateUserRequest defines the payload for PUT /api/users/{id}.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email,max=255"`
}

// CreateTaskRequest defines the payload for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string           `json:"title"        validate:"required,max=100"`
	Description string           `json:"description"`
	IsCompleted bool             `json:"is_completed"`
	Priority    *domain.Priority `json:"priority"`
	DueDate     *time.Time       `json:"due_date"`
	UserID      int64            `json:"user_id"      validate:"required,gt=0"`
	CategoryIDs []int64          `json:"category_ids" validate:"omitempty,dive,gt=0"`
}

// UpdateTaskRequest defines the payload for PUT /api/tasks/{id}.
// A present category_ids replaces the task's categories.
type UpdateTaskRequest struct {
	Title       *string          `json:"title"        validate:"omitempty,max=100"`
	Description *string          `json:"description"`
	IsCompleted *bool            `json:"is_completed"`
	Priority    *domain.Priority `json:"priority"`
	DueDate     *time.Time       `json:"due_date"`
	UserID      *int64           `json:"user_id"      validate:"omitempty,gt=0"`
	CategoryIDs *[]int64         `json:"category_ids" validate:"omitempty,dive,gt=0"`
}

// CreateCategoryRequest defines the payload for POST /api/categories.
type CreateCategoryRequest struct {
	Name   string `json:"name"    validate:"required,max=100"`
	UserID int64  `json:"user_id" validate:"required,gt=0"`
}

// UpdateCategoryRequest defines the payload for PUT /api/categories/{id}.
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary identifies the owner embedded in a task.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CategoryResponse is the public shape of a category.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CategorySummary identifies a category embedded in a task.
type CategorySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TaskResponse is the public shape of a task.
type TaskResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	IsCompleted bool              `json:"is_completed"`
	Priority    domain.Priority   `json:"priority"`
	DueDate     *time.Time        `json:"due_date"`
	UserID      int64             `json:"user_id"`
	User        *UserSummary      `json:"user,omitempty"`
	Categories  []CategorySummary `json:"categories"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// PagedResponse is one page of a listing.
type PagedResponse[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}
