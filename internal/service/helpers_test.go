package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/gormstore"
	"github.com/PajaGos/To-Do-REST-API/internal/service"
	"github.com/PajaGos/To-Do-REST-API/internal/testdb"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users      *service.UserServiceImpl
	tasks      *service.TaskServiceImpl
	categories *service.CategoryServiceImpl
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db := testdb.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userStore := gormstore.NewUserStore(db)
	taskStore := gormstore.NewTaskStore(db)
	categoryStore := gormstore.NewCategoryStore(db)
	linkStore := gormstore.NewTaskCategoryStore(db)

	return fixture{
		users:      service.NewUserService(db, userStore, taskStore, logger),
		tasks:      service.NewTaskService(db, taskStore, userStore, categoryStore, linkStore, logger),
		categories: service.NewCategoryService(db, categoryStore, userStore, taskStore, logger),
	}
}

func (f fixture) user(t *testing.T, name string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(name, fmt.Sprintf("%s@example.com", name))
	require.NoError(t, err)
	require.NoError(t, f.users.CreateUser(context.Background(), u))
	return u
}

func (f fixture) category(t *testing.T, userID int64, name string) *domain.Category {
	t.Helper()
	c, err := domain.NewCategory(userID, name)
	require.NoError(t, err)
	require.NoError(t, f.categories.CreateCategory(context.Background(), c))
	return c
}

func (f fixture) task(t *testing.T, userID int64, title string, categoryIDs ...int64) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(userID, title)
	require.NoError(t, err)
	created, err := f.tasks.CreateTask(context.Background(), task, categoryIDs)
	require.NoError(t, err)
	return created
}

func ptr[T any](v T) *T {
	return &v
}

// clientMessage asserts err is a service rule violation of the given kind
// and returns its message.
func clientMessage(t *testing.T, err error, kind error) string {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	return svcErr.Message
}
