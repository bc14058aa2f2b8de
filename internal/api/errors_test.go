package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PajaGos/To-Do-REST-API/internal/api/shared"
	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/service"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", &service.Error{Kind: service.ErrConflict, Message: "x"}, http.StatusConflict},
		{"missing reference", &service.Error{Kind: service.ErrReferenceNotFound, Message: "x"}, http.StatusBadRequest},
		{"user not found", fmt.Errorf("get: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"link not found", store.ErrTaskCategoryNotFound, http.StatusNotFound},
		{"raw duplicate", store.ErrEmailExists, http.StatusConflict},
		{"validation", domain.NewValidationError("title", "is required", nil), http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{
			"service message passes through",
			fmt.Errorf("tx: %w", &service.Error{Kind: service.ErrConflict, Message: "Username bob already exists."}),
			"Username bob already exists.",
		},
		{"validation", domain.NewValidationError("title", "is required", nil), "Invalid title: is required"},
		{"task not found", fmt.Errorf("%w: record not found", store.ErrTaskNotFound), "Task not found"},
		{"category not found", store.ErrCategoryNotFound, "Category not found"},
		{"link not found", store.ErrTaskCategoryNotFound, "Category is not assigned to the task"},
		{"priority", domain.ErrInvalidPriority, "Invalid priority: must be Low, Medium or High"},
		{"internal details hidden", errors.New("pq: password authentication failed"), "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	tests := []struct {
		name string
		req  interface{}
		want string
	}{
		{"missing title", &CreateTaskRequest{UserID: 1}, "Invalid title: required field"},
		{"bad email", &CreateUserRequest{Username: "alice", Email: "nope"}, "Invalid email: invalid email format"},
		{"short username", &CreateUserRequest{Username: "al", Email: "al@example.com"}, "Invalid username: must be at least 3 characters"},
		{"bad owner", &CreateCategoryRequest{Name: "Home", UserID: -1}, "Invalid user_id: must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.ValidateRequest(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, SanitizeValidationError(err))
		})
	}

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}

func TestHandleAPIError(t *testing.T) {
	t.Run("fallback replaces 5xx message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)

		HandleAPIError(w, r, errors.New("disk on fire"), "Failed to list tasks")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Failed to list tasks", body.Error)
	})

	t.Run("fallback ignored for client errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/tasks/3", nil)

		HandleAPIError(w, r, store.ErrTaskNotFound, "Failed to get task")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Task not found"}`, w.Body.String())
	})
}
