package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todoboard/internal/domain"
)

// CreateTaskInput contains the parameters for creating a task.
type CreateTaskInput struct {
	Heading     string
	Description string
	Status      string // Free text; the CLI defaults it to Pending
}

// CreateTaskOutput contains the result of creating a task.
type CreateTaskOutput struct {
	Task domain.Task // The created task with its service-assigned id
}

// CreateTask is the use case for creating a task.
type CreateTask struct {
	service domain.TaskService
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(service domain.TaskService) *CreateTask {
	return &CreateTask{
		service: service,
	}
}

// Execute creates a task with the given input.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	task, err := uc.service.Create(ctx, domain.TaskPayload{
		Heading:     in.Heading,
		Description: in.Description,
		Status:      in.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &CreateTaskOutput{Task: task}, nil
}
