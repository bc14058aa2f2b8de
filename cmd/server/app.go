package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PajaGos/To-Do-REST-API/internal/config"
	"github.com/PajaGos/To-Do-REST-API/internal/platform/gormstore"
	"github.com/PajaGos/To-Do-REST-API/internal/service"
	"github.com/PajaGos/To-Do-REST-API/internal/store"
	"gorm.io/gorm"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *gorm.DB

	userStore         store.UserStore
	taskStore         store.TaskStore
	categoryStore     store.CategoryStore
	taskCategoryStore store.TaskCategoryStore

	userService     service.UserService
	taskService     service.TaskService
	categoryService service.CategoryService
}

// newApplication wires stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = gormstore.NewUserStore(db)
	app.taskStore = gormstore.NewTaskStore(db)
	app.categoryStore = gormstore.NewCategoryStore(db)
	app.taskCategoryStore = gormstore.NewTaskCategoryStore(db)

	app.userService = service.NewUserService(db, app.userStore, app.taskStore, logger)
	app.taskService = service.NewTaskService(
		db,
		app.taskStore,
		app.userStore,
		app.categoryStore,
		app.taskCategoryStore,
		logger,
	)
	app.categoryService = service.NewCategoryService(
		db,
		app.categoryStore,
		app.userStore,
		app.taskStore,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app
}

// Run serves HTTP until ctx is cancelled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := gormstore.Close(app.db); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
