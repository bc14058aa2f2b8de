package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/PajaGos/To-Do-REST-API/internal/domain"
	"github.com/PajaGos/To-Do-REST-API/internal/service"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_CreateUser(t *testing.T) {
	created := time.Date(2025, time.May, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		createErr    error
		wantStatus   int
		wantMessage  string
		wantLocation string
	}{
		{
			name:         "created",
			body:         `{"username":"alice","email":"alice@example.com"}`,
			wantStatus:   http.StatusCreated,
			wantLocation: "/api/users/5",
		},
		{
			name:        "missing email",
			body:        `{"username":"alice"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email: required field",
		},
		{
			name:        "malformed json",
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "unknown field",
			body:        `{"username":"alice","email":"alice@example.com","admin":true}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "duplicate username",
			body:        `{"username":"alice","email":"alice@example.com"}`,
			createErr:   &service.Error{Kind: service.ErrConflict, Message: "Username alice already exists."},
			wantStatus:  http.StatusConflict,
			wantMessage: "Username alice already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockUserService{
				CreateUserFn: func(_ context.Context, user *domain.User) error {
					if tt.createErr != nil {
						return tt.createErr
					}
					user.ID = 5
					user.CreatedAt = created
					return nil
				},
			}
			h := NewUserHandler(svc, testLogger)

			rec := serve(http.MethodPost, "/api/users", h.CreateUser, "/api/users", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
				return
			}
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			got := decodeBody[UserResponse](t, rec)
			assert.Equal(t, UserResponse{ID: 5, Username: "alice", Email: "alice@example.com", CreatedAt: created}, got)
		})
	}
}

func TestUserHandler_GetUser(t *testing.T) {
	svc := &mockUserService{
		GetUserFn: func(_ context.Context, id int64) (*domain.User, error) {
			if id == 1 {
				return &domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil
			}
			return nil, store.ErrUserNotFound
		},
	}
	h := NewUserHandler(svc, testLogger)

	rec := serve(http.MethodGet, "/api/users/{id}", h.GetUser, "/api/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decodeBody[UserResponse](t, rec).Username)

	rec = serve(http.MethodGet, "/api/users/{id}", h.GetUser, "/api/users/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", errorMessage(t, rec))

	rec = serve(http.MethodGet, "/api/users/{id}", h.GetUser, "/api/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id: must be a positive integer", errorMessage(t, rec))
}

func TestUserHandler_UpdateUser(t *testing.T) {
	var gotPatch service.UserPatch
	svc := &mockUserService{
		UpdateUserFn: func(_ context.Context, id int64, patch service.UserPatch) error {
			if id != 3 {
				return store.ErrUserNotFound
			}
			gotPatch = patch
			return nil
		},
	}
	h := NewUserHandler(svc, testLogger)

	rec := serve(http.MethodPut, "/api/users/{id}", h.UpdateUser, "/api/users/3", `{"username":"carol"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, gotPatch.Username)
	assert.Equal(t, "carol", *gotPatch.Username)
	assert.Nil(t, gotPatch.Email)

	rec = serve(http.MethodPut, "/api/users/{id}", h.UpdateUser, "/api/users/4", `{"email":"x@example.com"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(http.MethodPut, "/api/users/{id}", h.UpdateUser, "/api/users/3", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email: invalid email format", errorMessage(t, rec))
}

func TestUserHandler_ListAndDelete(t *testing.T) {
	svc := &mockUserService{
		ListUsersFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}, nil
		},
		ListUserTasksFn: func(_ context.Context, id int64) ([]domain.Task, error) {
			return []domain.Task{{ID: 9, Title: "walk", UserID: id, Priority: domain.PriorityLow}}, nil
		},
		DeleteUserFn: func(context.Context, int64) error {
			return store.ErrUserNotFound
		},
	}
	h := NewUserHandler(svc, testLogger)

	rec := serve(http.MethodGet, "/api/users", h.ListUsers, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]UserResponse](t, rec), 2)

	rec = serve(http.MethodGet, "/api/users/{id}/tasks", h.ListUserTasks, "/api/users/1/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decodeBody[[]map[string]interface{}](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Low", tasks[0]["priority"])
	assert.Equal(t, []interface{}{}, tasks[0]["categories"])

	rec = serve(http.MethodDelete, "/api/users/{id}", h.DeleteUser, "/api/users/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewUserHandlerRequiresLogger(t *testing.T) {
	assert.Panics(t, func() { NewUserHandler(&mockUserService{}, nil) })
}
