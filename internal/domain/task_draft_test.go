package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftFromTask(t *testing.T) {
	task := Task{ID: "1", Heading: "X", Description: "Y", Status: StatusPending}

	d := DraftFromTask(task)

	require.NotNil(t, d.EditTarget)
	assert.Equal(t, task, *d.EditTarget)
	assert.Equal(t, "X", d.Heading)
	assert.Equal(t, "Y", d.Description)
	assert.Equal(t, StatusPending, d.Status)
	assert.True(t, d.IsEditing())
	assert.Equal(t, "1", d.TargetID())
}

func TestDraftFromTask_TargetIsCopy(t *testing.T) {
	task := Task{ID: "1", Heading: "X"}

	d := DraftFromTask(task)
	d.EditTarget.Heading = "changed"

	assert.Equal(t, "X", task.Heading)
}

func TestTaskDraft_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		draft TaskDraft
		want  bool
	}{
		{"zero value", TaskDraft{}, true},
		{"heading", TaskDraft{Heading: "a"}, false},
		{"description", TaskDraft{Description: "a"}, false},
		{"status", TaskDraft{Status: "a"}, false},
		{"target only", TaskDraft{EditTarget: &Task{ID: "1"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.IsEmpty())
		})
	}
}

func TestTaskDraft_Payload(t *testing.T) {
	d := TaskDraft{Heading: "A", Description: "B", Status: StatusPending}

	assert.Equal(t, TaskPayload{Heading: "A", Description: "B", Status: StatusPending}, d.Payload())
	assert.False(t, d.IsEditing())
	assert.Empty(t, d.TargetID())
}
