package store

import (
	"context"
	"fmt"

	"github.com/phrazzld/task-api/internal/domain"
)

// IDStrategy selects how a TaskStore assigns IDs to new tasks.
type IDStrategy string

const (
	// IDStrategyLength assigns len(collection)+1. IDs may repeat after a
	// delete followed by a create.
	IDStrategyLength IDStrategy = "length"

	// IDStrategySequence assigns IDs from a per-collection counter that only
	// ever increases.
	IDStrategySequence IDStrategy = "sequence"
)

// ParseIDStrategy converts a configuration value into an IDStrategy.
func ParseIDStrategy(s string) (IDStrategy, error) {
	switch IDStrategy(s) {
	case IDStrategyLength, IDStrategySequence:
		return IDStrategy(s), nil
	default:
		return "", fmt.Errorf("%w: unknown id strategy %q", ErrInvalidEntity, s)
	}
}

// TaskStore defines the interface for one ordered collection of tasks.
// Implementations return copies so callers never alias stored records.
type TaskStore interface {
	// Create appends a new incomplete task and returns it.
	Create(ctx context.Context, title, description string) (*domain.Task, error)

	// GetByID returns the first task with the given ID.
	// Returns ErrTaskNotFound if no task matches.
	GetByID(ctx context.Context, id int) (*domain.Task, error)

	// Update applies the patch to the first task with the given ID and
	// returns the updated task.
	// Returns ErrTaskNotFound if no task matches.
	Update(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes the first task with the given ID.
	// Returns ErrTaskNotFound if no task matches.
	Delete(ctx context.Context, id int) error

	// List returns all tasks in insertion order.
	List(ctx context.Context) ([]domain.Task, error)
}
