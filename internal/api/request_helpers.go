package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
)

// TaskIDParam is the chi URL parameter holding the task ID.
const TaskIDParam = "task_id"

// getPathTaskID extracts the integer task ID from the URL path.
// A missing or malformed value yields an error wrapping domain.ErrInvalidID.
func getPathTaskID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, TaskIDParam)
	if raw == "" {
		return 0, domain.NewValidationError(TaskIDParam, "is required", domain.ErrInvalidID)
	}

	id, err := shared.ParseInt(raw)
	if err != nil {
		return 0, domain.NewValidationError(TaskIDParam, "has invalid format", err)
	}

	return id, nil
}

// rawTaskID returns the unparsed task ID path parameter, for logging.
func rawTaskID(r *http.Request) string {
	return chi.URLParam(r, TaskIDParam)
}

// bindCreateTaskRequest reads title and description from a JSON body, a form
// body or the query string, in that order of preference, and validates
// that both were supplied.
func bindCreateTaskRequest(r *http.Request) (CreateTaskRequest, error) {
	var req CreateTaskRequest
	if err := shared.DecodeOptionalJSON(r, &req); err != nil {
		return req, err
	}

	if req.Title == nil {
		if v, ok := shared.Param(r, "title"); ok {
			req.Title = &v
		}
	}
	if req.Description == nil {
		if v, ok := shared.Param(r, "description"); ok {
			req.Description = &v
		}
	}

	if err := shared.ValidateRequest(req); err != nil {
		return req, err
	}
	return req, nil
}

// bindUpdateTaskRequest reads the optional patch fields from a JSON body, a
// form body or the query string. completed accepts the usual textual
// booleans outside JSON.
func bindUpdateTaskRequest(r *http.Request) (UpdateTaskRequest, error) {
	var req UpdateTaskRequest
	if err := shared.DecodeOptionalJSON(r, &req); err != nil {
		return req, err
	}

	if req.Title == nil {
		if v, ok := shared.Param(r, "title"); ok {
			req.Title = &v
		}
	}
	if req.Description == nil {
		if v, ok := shared.Param(r, "description"); ok {
			req.Description = &v
		}
	}
	if req.Completed == nil {
		if v, ok := shared.Param(r, "completed"); ok {
			completed, err := shared.ParseBool(v)
			if err != nil {
				return req, domain.NewValidationError("completed", "must be a boolean", err)
			}
			req.Completed = &completed
		}
	}

	return req, nil
}
