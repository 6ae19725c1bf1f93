package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todoboard/internal/domain"
	"github.com/runoshun/todoboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateTask_Execute_MergesUnsetFields(t *testing.T) {
	service := testutil.NewMockTaskService(
		domain.Task{ID: "1", Heading: "Buy milk", Description: "2L", Status: domain.StatusPending},
	)
	uc := NewUpdateTask(service)

	out, err := uc.Execute(context.Background(), UpdateTaskInput{
		ID:     "1",
		Status: strPtr(domain.StatusDone),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Task{ID: "1", Heading: "Buy milk", Description: "2L", Status: domain.StatusDone}, out.Task)
	require.Len(t, service.Updates, 1)
	assert.Equal(t, testutil.UpdateCall{
		ID:      "1",
		Payload: domain.TaskPayload{Heading: "Buy milk", Description: "2L", Status: domain.StatusDone},
	}, service.Updates[0])
	assert.Equal(t, 1, service.ListCalls)
}

func TestUpdateTask_Execute_AllFieldsSkipsFetch(t *testing.T) {
	service := testutil.NewMockTaskService(domain.Task{ID: "1"})
	uc := NewUpdateTask(service)

	_, err := uc.Execute(context.Background(), UpdateTaskInput{
		ID:          "1",
		Heading:     strPtr("h"),
		Description: strPtr(""),
		Status:      strPtr("Blocked"),
	})

	require.NoError(t, err)
	assert.Zero(t, service.ListCalls)
	assert.Equal(t, domain.TaskPayload{Heading: "h", Status: "Blocked"}, service.Updates[0].Payload)
}

func TestUpdateTask_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		in        UpdateTaskInput
		updateErr error
		wantErr   error
	}{
		{
			name:    "no fields",
			in:      UpdateTaskInput{ID: "1"},
			wantErr: domain.ErrNoFieldsToUpdate,
		},
		{
			name:    "empty id",
			in:      UpdateTaskInput{Heading: strPtr("x")},
			wantErr: domain.ErrEmptyID,
		},
		{
			name:    "unknown id",
			in:      UpdateTaskInput{ID: "missing", Heading: strPtr("x")},
			wantErr: domain.ErrTaskNotFound,
		},
		{
			name:      "remote failure",
			in:        UpdateTaskInput{ID: "1", Heading: strPtr("x")},
			updateErr: &domain.RemoteError{Op: "update", StatusCode: 500},
			wantErr:   domain.ErrRemoteCall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := testutil.NewMockTaskService(domain.Task{ID: "1"})
			service.UpdateErr = tt.updateErr
			uc := NewUpdateTask(service)

			out, err := uc.Execute(context.Background(), tt.in)

			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
