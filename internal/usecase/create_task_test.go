package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todoboard/internal/domain"
	"github.com/runoshun/todoboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask_Execute(t *testing.T) {
	service := testutil.NewMockTaskService()
	uc := NewCreateTask(service)

	out, err := uc.Execute(context.Background(), CreateTaskInput{
		Heading:     "Buy milk",
		Description: "2L",
		Status:      domain.StatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Task{ID: "task-1", Heading: "Buy milk", Description: "2L", Status: domain.StatusPending}, out.Task)
	assert.Equal(t, []domain.TaskPayload{{Heading: "Buy milk", Description: "2L", Status: domain.StatusPending}}, service.Creates)
}

func TestCreateTask_Execute_EmptyFieldsAllowed(t *testing.T) {
	service := testutil.NewMockTaskService()
	uc := NewCreateTask(service)

	out, err := uc.Execute(context.Background(), CreateTaskInput{})

	require.NoError(t, err)
	assert.Equal(t, "task-1", out.Task.ID)
	assert.Equal(t, []domain.TaskPayload{{}}, service.Creates)
}

func TestCreateTask_Execute_Error(t *testing.T) {
	service := testutil.NewMockTaskService()
	service.CreateErr = &domain.RemoteError{Op: "create", StatusCode: 400}
	uc := NewCreateTask(service)

	out, err := uc.Execute(context.Background(), CreateTaskInput{Heading: "x"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrRemoteCall)
	assert.Empty(t, service.Tasks)
}
