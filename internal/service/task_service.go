package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskService provides the CRUD operations on one task collection.
type TaskService interface {
	// CreateTask appends a new incomplete task.
	CreateTask(ctx context.Context, title, description string) (*domain.Task, error)

	// GetTask returns the task with the given ID.
	// Returns ErrTaskNotFound if it does not exist.
	GetTask(ctx context.Context, id int) (*domain.Task, error)

	// UpdateTask changes only the fields supplied in patch.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes the task with the given ID.
	// Returns ErrTaskNotFound if it does not exist.
	DeleteTask(ctx context.Context, id int) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	version domain.Version
	store   store.TaskStore
	logger  *slog.Logger
}

// NewTaskService creates a TaskService over the given version's store.
// It returns an error if the store is nil or the version is unknown.
func NewTaskService(
	version domain.Version,
	taskStore store.TaskStore,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}
	if !version.Valid() {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "unsupported API version",
			Err:       domain.ErrUnknownVersion,
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		version: version,
		store:   taskStore,
		logger:  logger.With("component", "task_service", "api_version", string(version)),
	}, nil
}

// log returns the request-scoped logger when there is one.
func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// CreateTask appends a new incomplete task to the collection.
func (s *taskServiceImpl) CreateTask(ctx context.Context, title, description string) (*domain.Task, error) {
	log := s.log(ctx)

	task, err := s.store.Create(ctx, title, description)
	if err != nil {
		log.Error("failed to create task", "error", err)
		return nil, NewTaskServiceError("create_task", "failed to store task", err)
	}

	log.Info("task created", "task_id", task.ID)
	return task, nil
}

// GetTask returns the task with the given ID.
func (s *taskServiceImpl) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.log(ctx).Debug("task lookup failed", "task_id", id, "error", err)
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask applies a partial update to the task with the given ID.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	log := s.log(ctx)

	task, err := s.store.Update(ctx, id, patch)
	if err != nil {
		log.Debug("task update failed", "task_id", id, "error", err)
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated", "task_id", id, "empty_patch", patch.IsEmpty())
	return task, nil
}

// DeleteTask removes the task with the given ID.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int) error {
	log := s.log(ctx)

	if err := s.store.Delete(ctx, id); err != nil {
		log.Debug("task delete failed", "task_id", id, "error", err)
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", "task_id", id)
	return nil
}
