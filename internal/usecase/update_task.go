package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todoboard/internal/domain"
)

// UpdateTaskInput contains the parameters for updating a task.
// All fields except ID are optional. Only non-nil fields are changed.
type UpdateTaskInput struct {
	Heading     *string // New heading (nil = no change)
	Description *string // New description (nil = no change)
	Status      *string // New status (nil = no change)
	ID          string  // Task ID to update (required)
}

// UpdateTaskOutput contains the result of updating a task.
type UpdateTaskOutput struct {
	Task domain.Task // The updated task
}

// UpdateTask is the use case for updating an existing task.
type UpdateTask struct {
	service domain.TaskService
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(service domain.TaskService) *UpdateTask {
	return &UpdateTask{
		service: service,
	}
}

// Execute updates a task. The update replaces every field, so when any
// field is left unset the current task is fetched and merged first.
func (uc *UpdateTask) Execute(ctx context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if in.Heading == nil && in.Description == nil && in.Status == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.ID == "" {
		return nil, domain.ErrEmptyID
	}

	var payload domain.TaskPayload
	if in.Heading == nil || in.Description == nil || in.Status == nil {
		current, err := findTask(ctx, uc.service, in.ID)
		if err != nil {
			return nil, err
		}
		payload = current.Payload()
	}

	if in.Heading != nil {
		payload.Heading = *in.Heading
	}
	if in.Description != nil {
		payload.Description = *in.Description
	}
	if in.Status != nil {
		payload.Status = *in.Status
	}

	task, err := uc.service.Update(ctx, in.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &UpdateTaskOutput{Task: task}, nil
}
