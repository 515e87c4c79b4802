package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/service"
)

// TaskHandler handles the task routes of a single API version.
type TaskHandler struct {
	version     domain.Version
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler for one version's collection.
func NewTaskHandler(
	version domain.Version,
	taskService service.TaskService,
	logger *slog.Logger,
) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		version:     version,
		taskService: taskService,
		logger: logger.With(
			slog.String("component", "task_handler"),
			slog.String("api_version", string(version)),
		),
	}
}

// log returns the request-scoped logger when there is one.
func (h *TaskHandler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}

// Home handles GET /apiv1/ requests with a welcome message.
func (h *TaskHandler) Home(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: fmt.Sprintf("Welcome to API %s", h.version),
	})
}

// GetTask handles GET /apiv{n}/tasks/{task_id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	taskID, err := getPathTaskID(r)
	if err != nil {
		log.Debug("invalid task ID", slog.String("value", rawTaskID(r)))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{Task: taskToPayload(task)})
}

// CreateTask handles POST /apiv{n}/tasks/ requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	req, err := bindCreateTaskRequest(r)
	if err != nil {
		log.Debug("invalid create request", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), *req.Title, *req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("task created", slog.Int("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, TaskResponse{Task: taskToPayload(task)})
}

// UpdateTask handles PATCH /apiv{n}/tasks/{task_id} requests. Only the
// supplied fields change.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	taskID, err := getPathTaskID(r)
	if err != nil {
		log.Debug("invalid task ID", slog.String("value", rawTaskID(r)))
		HandleAPIError(w, r, err, "")
		return
	}

	req, err := bindUpdateTaskRequest(r)
	if err != nil {
		log.Debug("invalid update request", slog.Int("task_id", taskID), slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskID, req.ToPatch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateTaskResponse{
		Message: MessageTaskUpdated,
		Task:    taskToPayload(task),
	})
}

// DeleteTask handles DELETE /apiv{n}/tasks/{task_id} requests. Success is a
// bodiless 204.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	taskID, err := getPathTaskID(r)
	if err != nil {
		log.Debug("invalid task ID", slog.String("value", rawTaskID(r)))
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug(MessageTaskDeleted, slog.Int("task_id", taskID))
	shared.RespondNoContent(w)
}
