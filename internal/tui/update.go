package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todoboard/internal/board"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case board.Msg:
		return m, m.applyResult(msg)
	}

	// Cursor blink and other input internals
	if m.mode.IsInputMode() {
		var cmd tea.Cmd
		m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear the failure hint on any key press
	m.notice = ""

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeForm:
		return m.handleFormMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys while navigating the table.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.returnMode = m.mode
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.store.ToggleForm()
		m.field = FieldHeading
		m.syncFromStore()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.editSelected()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.confirmDeleteSelected()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.store.LoadAll()
	}

	return m, nil
}

// handleFormMode handles keys while the task form has focus.
// Printable keys go to the focused input, so list navigation uses the
// arrow keys and control chords only.
func (m *Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.store.CancelForm()
		m.syncFromStore()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.field = m.field.Next()
		m.focusField()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.field = m.field.Prev()
		m.focusField()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.store.Submit()

	case key.Matches(msg, m.keys.FormEdit):
		m.editSelected()
		return m, nil

	case key.Matches(msg, m.keys.FormDelete):
		m.confirmDeleteSelected()
		return m, nil

	case msg.Type == tea.KeyUp:
		m.moveCursor(-1)
		return m, nil

	case msg.Type == tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	}

	// Forward to current input field
	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	value := m.inputs[m.field].Value()
	switch m.field {
	case FieldHeading:
		m.store.SetHeading(value)
	case FieldDescription:
		m.store.SetDescription(value)
	case FieldStatus:
		m.store.SetStatus(value)
	case formFieldCount:
	}
	return m, cmd
}

// handleConfirmMode handles keys in the delete confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmID
		m.closeDialog()
		cmd, err := m.store.Delete(id)
		if err != nil {
			m.notice = "delete failed"
			return m, nil
		}
		return m, cmd

	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Escape):
		m.closeDialog()
		return m, nil
	}

	return m, nil
}

// handleHelpMode handles keys in the help overlay.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.closeDialog()
	}
	return m, nil
}

// closeDialog returns to the mode that was active before a dialog opened.
func (m *Model) closeDialog() {
	m.mode = m.returnMode
	m.returnMode = ModeNormal
	m.confirmID = ""
	if m.mode == ModeForm {
		m.focusField()
	}
	m.syncFromStore()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.store.View().Tasks)
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// editSelected loads the selected task into the form.
func (m *Model) editSelected() {
	task, ok := m.SelectedTask()
	if !ok {
		return
	}
	// Unknown ids are logged by the store and leave the state untouched
	if err := m.store.BeginEdit(task.ID); err != nil {
		m.notice = "edit failed"
		return
	}
	m.field = FieldHeading
	if m.mode == ModeForm {
		m.focusField()
	}
	m.syncFromStore()
}

// confirmDeleteSelected opens the delete confirmation for the selected task.
func (m *Model) confirmDeleteSelected() {
	task, ok := m.SelectedTask()
	if !ok {
		return
	}
	m.confirmID = task.ID
	m.returnMode = m.mode
	m.mode = ModeConfirm
	m.blurInputs()
}
