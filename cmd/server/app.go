package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// One store and service per API version; the collections never share state.
	taskStores   map[domain.Version]store.TaskStore
	taskServices map[domain.Version]service.TaskService
}

// newApplication creates a new application instance with a seeded task
// collection for every supported API version.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	strategy, err := store.ParseIDStrategy(cfg.Store.IDStrategy)
	if err != nil {
		return nil, fmt.Errorf("invalid store configuration: %w", err)
	}

	app := &application{
		config:       cfg,
		logger:       logger,
		taskStores:   make(map[domain.Version]store.TaskStore, len(domain.Versions)),
		taskServices: make(map[domain.Version]service.TaskService, len(domain.Versions)),
	}

	for _, version := range domain.Versions {
		taskStore, err := memory.NewSeededTaskStore(strategy, version)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s task store: %w", version, err)
		}

		taskService, err := service.NewTaskService(version, taskStore, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s task service: %w", version, err)
		}

		app.taskStores[version] = taskStore
		app.taskServices[version] = taskService
		logger.Info("Task collection initialized",
			"api_version", string(version),
			"base_path", version.BasePath())
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
