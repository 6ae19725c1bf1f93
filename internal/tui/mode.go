// Package tui provides the terminal task board.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Navigating the task table
	ModeForm                // Typing into the task form
	ModeConfirm             // Delete confirmation dialog
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeForm:
		return "form"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeForm:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// FormField identifies one input of the task form.
type FormField int

const (
	FieldHeading FormField = iota
	FieldDescription
	FieldStatus
	formFieldCount
)

// Next returns the following field, wrapping around.
func (f FormField) Next() FormField {
	return (f + 1) % formFieldCount
}

// Prev returns the preceding field, wrapping around.
func (f FormField) Prev() FormField {
	return (f + formFieldCount - 1) % formFieldCount
}

// Label returns the caption shown next to the field.
func (f FormField) Label() string {
	switch f {
	case FieldHeading:
		return "Heading"
	case FieldDescription:
		return "Description"
	case FieldStatus:
		return "Status"
	case formFieldCount:
		return ""
	}
	return ""
}
