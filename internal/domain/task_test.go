package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	task, err := NewTask(3, "Buy milk", "2%")
	require.NoError(t, err)
	assert.Equal(t, 3, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2%", task.Description)
	assert.False(t, task.Completed)

	// Empty strings are accepted
	task, err = NewTask(1, "", "")
	require.NoError(t, err)
	assert.Empty(t, task.Title)

	_, err = NewTask(0, "title", "description")
	assert.True(t, errors.Is(err, ErrTaskIDNotPositive))

	_, err = NewTask(-4, "title", "description")
	assert.ErrorIs(t, err, ErrTaskIDNotPositive)
}

func TestTaskPatchApply(t *testing.T) {
	t.Parallel()

	title := "new title"
	description := "new description"
	completed := true

	tests := []struct {
		name     string
		patch    TaskPatch
		expected Task
	}{
		{
			name:     "empty patch",
			patch:    TaskPatch{},
			expected: Task{ID: 1, Title: "t", Description: "d"},
		},
		{
			name:     "completed only",
			patch:    TaskPatch{Completed: &completed},
			expected: Task{ID: 1, Title: "t", Description: "d", Completed: true},
		},
		{
			name:     "title and description",
			patch:    TaskPatch{Title: &title, Description: &description},
			expected: Task{ID: 1, Title: title, Description: description},
		},
		{
			name:     "all fields",
			patch:    TaskPatch{Title: &title, Description: &description, Completed: &completed},
			expected: Task{ID: 1, Title: title, Description: description, Completed: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{ID: 1, Title: "t", Description: "d"}
			tc.patch.Apply(&task)
			assert.Equal(t, tc.expected, task)
		})
	}
}

func TestTaskPatchIsEmpty(t *testing.T) {
	t.Parallel()

	falseValue := false
	assert.True(t, TaskPatch{}.IsEmpty())
	// A supplied false is still a change request
	assert.False(t, TaskPatch{Completed: &falseValue}.IsEmpty())
}

func TestSeedTasks(t *testing.T) {
	t.Parallel()

	v1, err := SeedTasks(VersionV1)
	require.NoError(t, err)
	require.Len(t, v1, 1)
	assert.Equal(t, Task{ID: 1, Title: "Learn FastAPI", Description: "Understand the basics"}, v1[0])

	v2, err := SeedTasks(VersionV2)
	require.NoError(t, err)
	require.Len(t, v2, 1)
	assert.Equal(t, "Upgrade API", v2[0].Title)

	// Each call returns independent copies
	v1[0].Title = "changed"
	again, err := SeedTasks(VersionV1)
	require.NoError(t, err)
	assert.Equal(t, "Learn FastAPI", again[0].Title)

	_, err = SeedTasks(Version("v3"))
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/apiv1", VersionV1.BasePath())
	assert.Equal(t, "/apiv2", VersionV2.BasePath())
	assert.True(t, VersionV1.Valid())
	assert.False(t, Version("v9").Valid())
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("task_id", "has invalid format", ErrInvalidID)
	assert.Equal(t, "task_id has invalid format", err.Error())
	assert.ErrorIs(t, err, ErrInvalidID)
}
