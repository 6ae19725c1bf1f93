package domain

// TaskDraft is the client-only edit buffer behind the task form.
// A nil EditTarget means submitting creates a task; otherwise it updates
// the task EditTarget points at.
type TaskDraft struct {
	EditTarget  *Task
	Heading     string
	Description string
	Status      string
}

// DraftFromTask returns a draft populated from the task, targeting a copy of it.
func DraftFromTask(t Task) TaskDraft {
	target := t
	return TaskDraft{
		EditTarget:  &target,
		Heading:     t.Heading,
		Description: t.Description,
		Status:      t.Status,
	}
}

// IsEditing reports whether submitting the draft performs an update.
func (d TaskDraft) IsEditing() bool {
	return d.EditTarget != nil
}

// IsEmpty reports whether every field is blank and no task is targeted.
func (d TaskDraft) IsEmpty() bool {
	return d.EditTarget == nil && d.Heading == "" && d.Description == "" && d.Status == ""
}

// Payload builds the request body from the draft fields.
func (d TaskDraft) Payload() TaskPayload {
	return TaskPayload{
		Heading:     d.Heading,
		Description: d.Description,
		Status:      d.Status,
	}
}

// TargetID returns the id of the task being edited, or "" when creating.
func (d TaskDraft) TargetID() string {
	if d.EditTarget == nil {
		return ""
	}
	return d.EditTarget.ID
}
