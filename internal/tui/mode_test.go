package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "normal"},
		{ModeForm, "form"},
		{ModeConfirm, "confirm"},
		{ModeHelp, "help"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestMode_IsInputMode(t *testing.T) {
	assert.True(t, ModeForm.IsInputMode())
	assert.False(t, ModeNormal.IsInputMode())
	assert.False(t, ModeConfirm.IsInputMode())
	assert.False(t, ModeHelp.IsInputMode())
}

func TestFormField_Cycle(t *testing.T) {
	assert.Equal(t, FieldDescription, FieldHeading.Next())
	assert.Equal(t, FieldStatus, FieldDescription.Next())
	assert.Equal(t, FieldHeading, FieldStatus.Next())
	assert.Equal(t, FieldStatus, FieldHeading.Prev())
	assert.Equal(t, "Description", FieldDescription.Label())
}
