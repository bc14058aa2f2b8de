package gormstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/gormstore"
	"github.com/PajaGos/To-Do-REST-API/internal/testdb"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stores struct {
	db             *gorm.DB
	users          *gormstore.UserStore
	tasks          *gormstore.TaskStore
	categories     *gormstore.CategoryStore
	taskCategories *gormstore.TaskCategoryStore
}

func newStores(t *testing.T) stores {
	db := testdb.New(t)
	return stores{
		db:             db,
		users:          gormstore.NewUserStore(db),
		tasks:          gormstore.NewTaskStore(db),
		categories:     gormstore.NewCategoryStore(db),
		taskCategories: gormstore.NewTaskCategoryStore(db),
	}
}

func (s stores) user(t *testing.T, name string) *domain.User {
	t.Helper()
	u := &domain.User{Username: name, Email: fmt.Sprintf("%s@example.com", name)}
	require.NoError(t, s.users.Create(context.Background(), u))
	return u
}

func (s stores) category(t *testing.T, userID int64, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{UserID: userID, Name: name}
	require.NoError(t, s.categories.Create(context.Background(), c))
	return c
}

func (s stores) task(t *testing.T, userID int64, title string, opts ...func(*domain.Task)) *domain.Task {
	t.Helper()
	task := &domain.Task{UserID: userID, Title: title, Priority: domain.DefaultPriority}
	for _, opt := range opts {
		opt(task)
	}
	require.NoError(t, s.tasks.Create(context.Background(), task))
	return task
}

func withPriority(p domain.Priority) func(*domain.Task) {
	return func(task *domain.Task) { task.Priority = p }
}

func dueOn(day int) func(*domain.Task) {
	return func(task *domain.Task) {
		d := time.Date(2030, time.January, day, 12, 0, 0, 0, time.UTC)
		task.DueDate = &d
	}
}

func titles(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}
