package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskStore implements store.TaskStore with an ordered slice guarded by a
// mutex. Insertion order is display order.
type TaskStore struct {
	mu       sync.RWMutex
	tasks    []domain.Task
	strategy store.IDStrategy
	// lastID is the highest ID ever assigned or seeded; used by IDStrategySequence.
	lastID int
}

// Compile-time check that TaskStore implements store.TaskStore.
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a TaskStore holding copies of the seed tasks.
func NewTaskStore(strategy store.IDStrategy, seed []domain.Task) (*TaskStore, error) {
	if _, err := store.ParseIDStrategy(string(strategy)); err != nil {
		return nil, err
	}

	s := &TaskStore{
		tasks:    make([]domain.Task, 0, len(seed)),
		strategy: strategy,
	}
	for _, t := range seed {
		if err := t.Validate(); err != nil {
			return nil, store.NewStoreError("task", "seed", "invalid seed task", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
		}
		s.tasks = append(s.tasks, t)
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}

	return s, nil
}

// NewSeededTaskStore creates a TaskStore initialised with the seed tasks of
// the given API version.
func NewSeededTaskStore(strategy store.IDStrategy, version domain.Version) (*TaskStore, error) {
	seed, err := domain.SeedTasks(version)
	if err != nil {
		return nil, err
	}
	return NewTaskStore(strategy, seed)
}

// Create appends a new incomplete task.
func (s *TaskStore) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := domain.NewTask(s.nextIDLocked(), title, description)
	if err != nil {
		return nil, store.NewStoreError("task", "create", "invalid task", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.tasks = append(s.tasks, *task)
	if task.ID > s.lastID {
		s.lastID = task.ID
	}

	log.Debug("task stored", "task_id", task.ID, "collection_size", len(s.tasks))

	created := *task
	return &created, nil
}

// nextIDLocked returns the ID for the next task. s.mu must be held.
func (s *TaskStore) nextIDLocked() int {
	if s.strategy == store.IDStrategySequence {
		return s.lastID + 1
	}
	return len(s.tasks) + 1
}

// indexOfLocked returns the index of the first task with the given ID, or -1.
// s.mu must be held.
func (s *TaskStore) indexOfLocked(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// GetByID returns a copy of the first task with the given ID.
func (s *TaskStore) GetByID(_ context.Context, id int) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return nil, store.ErrTaskNotFound
	}

	task := s.tasks[i]
	return &task, nil
}

// Update applies patch to the first task with the given ID.
func (s *TaskStore) Update(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return nil, store.ErrTaskNotFound
	}

	patch.Apply(&s.tasks[i])

	logger.FromContext(ctx).Debug("task updated",
		"task_id", id,
		"title_changed", patch.Title != nil,
		"description_changed", patch.Description != nil,
		"completed_changed", patch.Completed != nil)

	task := s.tasks[i]
	return &task, nil
}

// Delete removes the first task with the given ID by its index.
func (s *TaskStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return store.ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	logger.FromContext(ctx).Debug("task removed", "task_id", id, "collection_size", len(s.tasks))
	return nil
}

// List returns a copy of all tasks in insertion order.
func (s *TaskStore) List(_ context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks, nil
}
