package api

import (
	"log/slog"
	"net/http"

	"github.com/PajaGos/To-Do-REST-API/internal/api/shared"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/logger"
	"github.com/PajaGos/To-Do-REST-API/internal/service"
)

// CategoryHandler handles /api/categories requests
type CategoryHandler struct {
	categories service.CategoryService
	logger     *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}
	return &CategoryHandler{
		categories: categories,
		logger:     logger.With(slog.String("component", "category_handler")),
	}
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, categoriesToResponse(categories))
}

// GetCategory handles GET /api/categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categoryID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	category, err := h.categories.GetCategory(r.Context(), categoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get category")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// ListCategoryTasks handles GET /api/categories/{id}/tasks
func (h *CategoryHandler) ListCategoryTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categoryID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	tasks, err := h.categories.ListCategoryTasks(r.Context(), categoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list category tasks")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCategoryRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	category, err := req.toDomain()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.categories.CreateCategory(r.Context(), category); err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}

	log.Debug("category created", slog.Int64("category_id", category.ID))
	shared.RespondCreated(w, r, resourceLocation(r, category.ID), categoryToResponse(category))
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categoryID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	if err := h.categories.UpdateCategory(r.Context(), categoryID, req.toPatch()); err != nil {
		HandleAPIError(w, r, err, "Failed to update category")
		return
	}
	shared.RespondNoContent(w)
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categoryID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.categories.DeleteCategory(r.Context(), categoryID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}
	shared.RespondNoContent(w)
}
