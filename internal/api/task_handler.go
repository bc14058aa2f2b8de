package api

import (
	"log/slog"
	"net/http"

	"github.com/PajaGos/To-Do-REST-API/internal/api/shared"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/logger"
	"github.com/PajaGos/To-Do-REST-API/internal/service"
)

// TaskHandler handles /api/tasks requests, including the category links
// under /api/tasks/{taskId}/categories.
type TaskHandler struct {
	tasks  service.TaskService
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}
	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks
// Supports user_id and category filters, sort_by/sort_order, and
// page_number/page_size paging.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query, err := parseTaskQuery(r)
	if err != nil {
		log.Debug("invalid task query", slog.String("query", r.URL.RawQuery))
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.tasks.ListTasks(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(page, query))
}

// GetTask handles GET /api/tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /api/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	task, err := req.toDomain()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	created, err := h.tasks.CreateTask(r.Context(), task, req.CategoryIDs)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created",
		slog.Int64("task_id", created.ID),
		slog.Int64("user_id", created.UserID))
	shared.RespondCreated(w, r, resourceLocation(r, created.ID), taskToResponse(created))
}

// UpdateTask handles PUT /api/tasks/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	if err := h.tasks.UpdateTask(r.Context(), taskID, req.toPatch()); err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}
	shared.RespondNoContent(w)
}

// DeleteTask handles DELETE /api/tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), taskID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}
	shared.RespondNoContent(w)
}

// ListTaskCategories handles GET /api/tasks/{taskId}/categories
func (h *TaskHandler) ListTaskCategories(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, ok := handlePathID(w, r, "taskId", log)
	if !ok {
		return
	}

	categories, err := h.tasks.ListTaskCategories(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list task categories")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, categoriesToResponse(categories))
}

// AssignCategory handles POST /api/tasks/{taskId}/categories/{id}
func (h *TaskHandler) AssignCategory(w http.ResponseWriter, r *http.Request) {
	taskID, categoryID, ok := h.linkIDs(w, r)
	if !ok {
		return
	}

	if err := h.tasks.AssignCategory(r.Context(), taskID, categoryID); err != nil {
		HandleAPIError(w, r, err, "Failed to assign category")
		return
	}
	shared.RespondNoContent(w)
}

// RemoveCategory handles DELETE /api/tasks/{taskId}/categories/{id}
func (h *TaskHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	taskID, categoryID, ok := h.linkIDs(w, r)
	if !ok {
		return
	}

	if err := h.tasks.RemoveCategory(r.Context(), taskID, categoryID); err != nil {
		HandleAPIError(w, r, err, "Failed to remove category")
		return
	}
	shared.RespondNoContent(w)
}

func (h *TaskHandler) linkIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, ok := handlePathID(w, r, "taskId", log)
	if !ok {
		return 0, 0, false
	}
	categoryID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return 0, 0, false
	}
	return taskID, categoryID, true
}
