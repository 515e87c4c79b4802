package api

import "github.com/phrazzld/task-api/internal/domain"

// CreateTaskRequest carries the fields of a new task. Pointers distinguish a
// missing field from an empty string; only missing fields are rejected.
type CreateTaskRequest struct {
	Title       *string `json:"title"       validate:"required"`
	Description *string `json:"description" validate:"required"`
}

// UpdateTaskRequest carries a partial update. Every field is optional.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTaskRequest) ToPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// TaskPayload is the wire representation of a task.
type TaskPayload struct {
	TaskID      int    `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskResponse wraps a single task, e.g. {"task": {...}}.
type TaskResponse struct {
	Task TaskPayload `json:"task"`
}

// UpdateTaskResponse confirms an update and echoes the updated task.
type UpdateTaskResponse struct {
	Message string      `json:"message"`
	Task    TaskPayload `json:"task"`
}

// taskToPayload converts a domain.Task to a TaskPayload
func taskToPayload(task *domain.Task) TaskPayload {
	return TaskPayload{
		TaskID:      task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}
