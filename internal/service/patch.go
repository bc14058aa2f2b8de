package service

import (
	"strings"
	"time"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
)

// Patches describe partial updates: nil fields leave the entity untouched.

// UserPatch updates a user.
type UserPatch struct {
	Username *string
	Email    *string
}

// Apply copies the supplied fields onto u.
func (p UserPatch) Apply(u *domain.User) {
	if p.Username != nil {
		u.Username = strings.TrimSpace(*p.Username)
	}
	if p.Email != nil {
		u.Email = strings.TrimSpace(*p.Email)
	}
}

// TaskPatch updates a task. A non-nil CategoryIDs replaces the task's
// categories; an empty slice clears them.
type TaskPatch struct {
	Title       *string
	Description *string
	IsCompleted *bool
	Priority    *domain.Priority
	DueDate     *time.Time
	UserID      *int64
	CategoryIDs *[]int64
}

// Apply copies the supplied scalar fields onto t. Categories are handled by
// the service.
func (p TaskPatch) Apply(t *domain.Task) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		due := p.DueDate.UTC()
		t.DueDate = &due
	}
	if p.UserID != nil {
		t.UserID = *p.UserID
	}
}

// CategoryPatch updates a category.
type CategoryPatch struct {
	Name *string
}

// Apply copies the supplied fields onto c.
func (p CategoryPatch) Apply(c *domain.Category) {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
}

// uniqueIDs drops repeated IDs, keeping first occurrences in order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
