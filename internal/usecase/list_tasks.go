// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todoboard/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.Task // Tasks in the service's order
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	service domain.TaskService
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(service domain.TaskService) *ListTasks {
	return &ListTasks{
		service: service,
	}
}

// Execute returns every task held by the service.
func (uc *ListTasks) Execute(ctx context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.service.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
