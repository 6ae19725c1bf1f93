// Package domain contains core business entities and interfaces.
package domain

// Well-known status labels. Status is free text; these are only the values
// the form suggests and the CLI defaults to.
const (
	StatusPending = "Pending"
	StatusDone    = "Done"
)

// Task represents one to-do item held by the remote service.
// ID is assigned by the service and never changed by the client.
type Task struct {
	ID          string `json:"_id" yaml:"id"`
	Heading     string `json:"heading" yaml:"heading"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
}

// Payload returns the request body used to create or update this task.
func (t Task) Payload() TaskPayload {
	return TaskPayload{
		Heading:     t.Heading,
		Description: t.Description,
		Status:      t.Status,
	}
}

// IsDone reports whether the status label reads as completed.
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}

// TaskPayload is the body of create and update requests.
type TaskPayload struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ToTask builds a task with the given id from the payload.
func (p TaskPayload) ToTask(id string) Task {
	return Task{
		ID:          id,
		Heading:     p.Heading,
		Description: p.Description,
		Status:      p.Status,
	}
}

// FindTask returns the task with the given id and whether it was found.
func FindTask(tasks []Task, id string) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// RemoveTask returns a copy of tasks without the task with the given id.
// Order of the remaining tasks is preserved.
func RemoveTask(tasks []Task, id string) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			result = append(result, t)
		}
	}
	return result
}
