package domain

import "errors"

// Validation errors for Task.
var (
	ErrTaskIDNotPositive = errors.New("task ID must be positive")
)

// Task is a single to-do record owned by one API version's collection.
type Task struct {
	ID          int    `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NewTask creates an incomplete task with the given ID, title and description.
// Empty titles and descriptions are accepted.
func NewTask(id int, title, description string) (*Task, error) {
	task := &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   false,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return ErrTaskIDNotPositive
	}
	return nil
}

// TaskPatch is a partial update of a Task. A nil field means the field was
// not supplied and must be left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// Apply mutates the supplied fields of t in place.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
