package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todoboard/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	ID string // Task ID (required)
}

// ShowTaskOutput contains the result of showing a task.
type ShowTaskOutput struct {
	Task domain.Task
}

// ShowTask is the use case for displaying task details.
// The remote resource has no single-item GET, so the task is found in the list.
type ShowTask struct {
	service domain.TaskService
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(service domain.TaskService) *ShowTask {
	return &ShowTask{
		service: service,
	}
}

// Execute retrieves and returns the task details.
func (uc *ShowTask) Execute(ctx context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := findTask(ctx, uc.service, in.ID)
	if err != nil {
		return nil, err
	}
	return &ShowTaskOutput{Task: task}, nil
}

// findTask lists the service and returns the task with the given id.
func findTask(ctx context.Context, service domain.TaskService, id string) (domain.Task, error) {
	if id == "" {
		return domain.Task{}, domain.ErrEmptyID
	}
	tasks, err := service.List(ctx)
	if err != nil {
		return domain.Task{}, fmt.Errorf("list tasks: %w", err)
	}
	task, ok := domain.FindTask(tasks, id)
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	return task, nil
}
