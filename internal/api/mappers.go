package api

import (
	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/service"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
)

// Request -> entity

func (req CreateUserRequest) toDomain() (*domain.User, error) {
	return domain.NewUser(req.Username, req.Email)
}

func (req UpdateUserRequest) toPatch() service.UserPatch {
	return service.UserPatch{Username: req.Username, Email: req.Email}
}

// toDomain builds the task; the category IDs travel separately.
func (req CreateTaskRequest) toDomain() (*domain.Task, error) {
	task, err := domain.NewTask(req.UserID, req.Title)
	if err != nil {
		return nil, err
	}
	task.Description = req.Description
	task.IsCompleted = req.IsCompleted
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		due := req.DueDate.UTC()
		task.DueDate = &due
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

func (req UpdateTaskRequest) toPatch() service.TaskPatch {
	return service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		UserID:      req.UserID,
		CategoryIDs: req.CategoryIDs,
	}
}

func (req CreateCategoryRequest) toDomain() (*domain.Category, error) {
	return domain.NewCategory(req.UserID, req.Name)
}

func (req UpdateCategoryRequest) toPatch() service.CategoryPatch {
	return service.CategoryPatch{Name: req.Name}
}

// Entity -> response

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = userToResponse(&users[i])
	}
	return out
}

func categoryToResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
	}
}

func categoriesToResponse(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = categoryToResponse(&categories[i])
	}
	return out
}

func taskToResponse(t *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		UserID:      t.UserID,
		Categories:  []CategorySummary{},
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.User != nil {
		resp.User = &UserSummary{ID: t.User.ID, Username: t.User.Username}
	}
	for _, c := range t.Categories() {
		resp.Categories = append(resp.Categories, CategorySummary{ID: c.ID, Name: c.Name})
	}
	return resp
}

func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = taskToResponse(&tasks[i])
	}
	return out
}

// pageToResponse reports the normalized paging of q alongside the items.
func pageToResponse(page *store.TaskPage, q store.TaskQuery) PagedResponse[TaskResponse] {
	q = q.Normalized()
	totalPages := 0
	if page.TotalItems > 0 {
		totalPages = int((page.TotalItems + int64(q.PageSize) - 1) / int64(q.PageSize))
	}
	return PagedResponse[TaskResponse]{
		Items:      tasksToResponse(page.Items),
		PageNumber: q.PageNumber,
		PageSize:   q.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: totalPages,
	}
}
