// Package main implements the entry point for the task API server, which
// exposes two independent in-memory task collections under /apiv1 and /apiv2
// behind a shared API key.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("task-api: %v", err)
	}
}

// run loads configuration, sets up logging, builds the application and
// serves until a shutdown signal arrives.
func run(ctx context.Context) error {
	cfg, err := initializeApp()
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"id_strategy", cfg.Store.IDStrategy,
		"pid", os.Getpid())

	return cfg, nil
}
