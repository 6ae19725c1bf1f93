package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todoboard/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	ID string // Task ID to delete (required)
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct{}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	service domain.TaskService
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(service domain.TaskService) *DeleteTask {
	return &DeleteTask{
		service: service,
	}
}

// Execute deletes the task with the given id.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if in.ID == "" {
		return nil, domain.ErrEmptyID
	}
	if err := uc.service.Delete(ctx, in.ID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}
	return &DeleteTaskOutput{}, nil
}
