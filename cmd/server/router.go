package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/PajaGos/To-Do-REST-API/internal/api"
	apiMiddleware "github.com/PajaGos/To-Do-REST-API/internal/api/middleware"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter creates the router with all middleware and API routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	// Trace wraps Recoverer so recovered panics are logged with their 500.
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(middleware.Recoverer)

	userHandler := api.NewUserHandler(app.userService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)
			r.Get("/{id}", userHandler.GetUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
			r.Get("/{id}/tasks", userHandler.ListUserTasks)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.ListTasks)
			r.Post("/", taskHandler.CreateTask)
			r.Get("/{id}", taskHandler.GetTask)
			r.Put("/{id}", taskHandler.UpdateTask)
			r.Delete("/{id}", taskHandler.DeleteTask)

			r.Get("/{taskId}/categories", taskHandler.ListTaskCategories)
			r.Post("/{taskId}/categories/{id}", taskHandler.AssignCategory)
			r.Delete("/{taskId}/categories/{id}", taskHandler.RemoveCategory)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.ListCategories)
			r.Post("/", categoryHandler.CreateCategory)
			r.Get("/{id}", categoryHandler.GetCategory)
			r.Put("/{id}", categoryHandler.UpdateCategory)
			r.Delete("/{id}", categoryHandler.DeleteCategory)
			r.Get("/{id}/tasks", categoryHandler.ListCategoryTasks)
		})
	})

	var pinger store.Pinger
	if sqlDB, err := app.db.DB(); err == nil {
		pinger = sqlDB
	} else {
		app.logger.Error("Health check has no connection pool", "error", err)
	}
	r.Get("/health", healthHandler(pinger, app.logger))

	return r
}

// healthHandler reports 200 OK while the database answers pings and 503 otherwise.
func healthHandler(db store.Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, "OK"
		if db == nil {
			status, body = http.StatusServiceUnavailable, "Database unavailable"
		} else {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.Warn("Health check failed", "error", err)
				status, body = http.StatusServiceUnavailable, "Database unavailable"
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	}
}
