package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/task-api/internal/api"
	apiMiddleware "github.com/phrazzld/task-api/internal/api/middleware"
	"github.com/phrazzld/task-api/internal/domain"
)

// setupRouter creates the router with the standard middleware, the health
// check and one API-key protected route family per version.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewRequestLogger(app.logger))
	r.Use(middleware.Recoverer)

	authMiddleware := apiMiddleware.NewAPIKeyMiddleware(app.config.Auth.APIKey)

	for _, version := range domain.Versions {
		taskHandler := api.NewTaskHandler(version, app.taskServices[version], app.logger)

		r.Route(version.BasePath(), func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			if version == domain.VersionV1 {
				r.Get("/", taskHandler.Home)
			}

			r.Post("/tasks", taskHandler.CreateTask)
			r.Post("/tasks/", taskHandler.CreateTask)
			r.Get("/tasks/{task_id}", taskHandler.GetTask)
			r.Patch("/tasks/{task_id}", taskHandler.UpdateTask)
			r.Delete("/tasks/{task_id}", taskHandler.DeleteTask)
		})
	}

	// Health check endpoint, outside the API key gate
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
