package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTaskStore is a store.TaskStore whose methods are supplied per test.
type mockTaskStore struct {
	createFn func(ctx context.Context, title, description string) (*domain.Task, error)
	getFn    func(ctx context.Context, id int) (*domain.Task, error)
	updateFn func(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error)
	deleteFn func(ctx context.Context, id int) error
}

func (m *mockTaskStore) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	return m.createFn(ctx, title, description)
}

func (m *mockTaskStore) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	return m.getFn(ctx, id)
}

func (m *mockTaskStore) Update(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockTaskStore) Delete(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTaskStore) List(context.Context) ([]domain.Task, error) {
	return nil, nil
}

func newMemoryService(t *testing.T, version domain.Version) TaskService {
	t.Helper()
	s, err := memory.NewSeededTaskStore(store.IDStrategyLength, version)
	require.NoError(t, err)
	l, _ := logger.GetTestLogger(t)
	svc, err := NewTaskService(version, s, l)
	require.NoError(t, err)
	return svc
}

func TestNewTaskService(t *testing.T) {
	t.Parallel()

	_, err := NewTaskService(domain.VersionV1, nil, nil)
	var svcErr *TaskServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "create_service", svcErr.Operation)

	_, err = NewTaskService(domain.Version("v3"), &mockTaskStore{}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownVersion)

	svc, err := NewTaskService(domain.VersionV2, &mockTaskStore{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestTaskService_Lifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newMemoryService(t, domain.VersionV1)

	created, err := svc.CreateTask(ctx, "Buy milk", "2%")
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
	assert.False(t, created.Completed)

	fetched, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *fetched)

	completed := true
	updated, err := svc.UpdateTask(ctx, created.ID, domain.TaskPatch{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "2%", updated.Description)

	require.NoError(t, svc.DeleteTask(ctx, created.ID))

	_, err = svc.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = svc.UpdateTask(ctx, created.ID, domain.TaskPatch{})
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.ErrorIs(t, svc.DeleteTask(ctx, created.ID), ErrTaskNotFound)
}

func TestTaskService_VersionsAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v1 := newMemoryService(t, domain.VersionV1)
	v2 := newMemoryService(t, domain.VersionV2)

	_, err := v1.CreateTask(ctx, "only in v1", "")
	require.NoError(t, err)

	_, err = v2.GetTask(ctx, 2)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	seed, err := v2.GetTask(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Upgrade API", seed.Title)
}

func TestTaskService_WrapsUnexpectedErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	svc, err := NewTaskService(domain.VersionV1, &mockTaskStore{
		createFn: func(context.Context, string, string) (*domain.Task, error) { return nil, boom },
		getFn:    func(context.Context, int) (*domain.Task, error) { return nil, boom },
		updateFn: func(context.Context, int, domain.TaskPatch) (*domain.Task, error) { return nil, boom },
		deleteFn: func(context.Context, int) error { return boom },
	}, nil)
	require.NoError(t, err)

	_, err = svc.CreateTask(ctx, "t", "d")
	var svcErr *TaskServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "create_task", svcErr.Operation)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetTask(ctx, 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.UpdateTask(ctx, 1, domain.TaskPatch{})
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, svc.DeleteTask(ctx, 1), boom)
}

func TestNewTaskServiceError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewTaskServiceError("get_task", "msg", nil))
	assert.Equal(t, ErrTaskNotFound, NewTaskServiceError("get_task", "msg", store.ErrTaskNotFound))
	assert.Equal(t, ErrTaskNotFound, NewTaskServiceError("get_task", "msg", ErrTaskNotFound))

	err := NewTaskServiceError("update_task", "failed", store.ErrInvalidEntity)
	assert.Equal(t, "task service update_task failed: failed: invalid entity", err.Error())

	bare := &TaskServiceError{Operation: "create_service", Message: "nil store"}
	assert.Equal(t, "task service create_service failed: nil store", bare.Error())
}

func TestTaskService_UsesContextLogger(t *testing.T) {
	t.Parallel()

	l, buf := logger.GetTestLogger(t)
	ctx := logger.WithLogger(context.Background(), l.With("trace_id", "trace-123"))
	svc := newMemoryService(t, domain.VersionV2)

	_, err := svc.CreateTask(ctx, "t", "d")
	require.NoError(t, err)

	logger.AssertLogContains(t, buf, "task created")
	logger.AssertLogField(t, buf, "trace_id", "trace-123")
}
