package api

import (
	"context"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/service"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
)

// Hand-written service mocks. Each method delegates to the matching function
// field; tests set only the fields the handler under test reaches.

type mockUserService struct {
	ListUsersFn     func(ctx context.Context) ([]domain.User, error)
	GetUserFn       func(ctx context.Context, userID int64) (*domain.User, error)
	ListUserTasksFn func(ctx context.Context, userID int64) ([]domain.Task, error)
	CreateUserFn    func(ctx context.Context, user *domain.User) error
	UpdateUserFn    func(ctx context.Context, userID int64, patch service.UserPatch) error
	DeleteUserFn    func(ctx context.Context, userID int64) error
}

var _ service.UserService = (*mockUserService)(nil)

func (m *mockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return m.ListUsersFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return m.GetUserFn(ctx, userID)
}

func (m *mockUserService) ListUserTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	return m.ListUserTasksFn(ctx, userID)
}

func (m *mockUserService) CreateUser(ctx context.Context, user *domain.User) error {
	return m.CreateUserFn(ctx, user)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, patch service.UserPatch) error {
	return m.UpdateUserFn(ctx, userID, patch)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.DeleteUserFn(ctx, userID)
}

type mockTaskService struct {
	ListTasksFn          func(ctx context.Context, query store.TaskQuery) (*store.TaskPage, error)
	GetTaskFn            func(ctx context.Context, taskID int64) (*domain.Task, error)
	CreateTaskFn         func(ctx context.Context, task *domain.Task, categoryIDs []int64) (*domain.Task, error)
	UpdateTaskFn         func(ctx context.Context, taskID int64, patch service.TaskPatch) error
	DeleteTaskFn         func(ctx context.Context, taskID int64) error
	ListTaskCategoriesFn func(ctx context.Context, taskID int64) ([]domain.Category, error)
	AssignCategoryFn     func(ctx context.Context, taskID, categoryID int64) error
	RemoveCategoryFn     func(ctx context.Context, taskID, categoryID int64) error
}

var _ service.TaskService = (*mockTaskService)(nil)

func (m *mockTaskService) ListTasks(ctx context.Context, query store.TaskQuery) (*store.TaskPage, error) {
	return m.ListTasksFn(ctx, query)
}

func (m *mockTaskService) GetTask(ctx context.Context, taskID int64) (*domain.Task, error) {
	return m.GetTaskFn(ctx, taskID)
}

func (m *mockTaskService) CreateTask(
	ctx context.Context,
	task *domain.Task,
	categoryIDs []int64,
) (*domain.Task, error) {
	return m.CreateTaskFn(ctx, task, categoryIDs)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, taskID int64, patch service.TaskPatch) error {
	return m.UpdateTaskFn(ctx, taskID, patch)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, taskID int64) error {
	return m.DeleteTaskFn(ctx, taskID)
}

func (m *mockTaskService) ListTaskCategories(ctx context.Context, taskID int64) ([]domain.Category, error) {
	return m.ListTaskCategoriesFn(ctx, taskID)
}

func (m *mockTaskService) AssignCategory(ctx context.Context, taskID, categoryID int64) error {
	return m.AssignCategoryFn(ctx, taskID, categoryID)
}

func (m *mockTaskService) RemoveCategory(ctx context.Context, taskID, categoryID int64) error {
	return m.RemoveCategoryFn(ctx, taskID, categoryID)
}

type mockCategoryService struct {
	ListCategoriesFn    func(ctx context.Context) ([]domain.Category, error)
	GetCategoryFn       func(ctx context.Context, categoryID int64) (*domain.Category, error)
	ListCategoryTasksFn func(ctx context.Context, categoryID int64) ([]domain.Task, error)
	CreateCategoryFn    func(ctx context.Context, category *domain.Category) error
	UpdateCategoryFn    func(ctx context.Context, categoryID int64, patch service.CategoryPatch) error
	DeleteCategoryFn    func(ctx context.Context, categoryID int64) error
}

var _ service.CategoryService = (*mockCategoryService)(nil)

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.ListCategoriesFn(ctx)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return m.GetCategoryFn(ctx, categoryID)
}

func (m *mockCategoryService) ListCategoryTasks(ctx context.Context, categoryID int64) ([]domain.Task, error) {
	return m.ListCategoryTasksFn(ctx, categoryID)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, category *domain.Category) error {
	return m.CreateCategoryFn(ctx, category)
}

func (m *mockCategoryService) UpdateCategory(
	ctx context.Context,
	categoryID int64,
	patch service.CategoryPatch,
) error {
	return m.UpdateCategoryFn(ctx, categoryID, patch)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return m.DeleteCategoryFn(ctx, categoryID)
}
