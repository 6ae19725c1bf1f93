package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todoboard/internal/board"
	"github.com/runoshun/todoboard/internal/domain"
)

// Model is the main bubbletea model for the TUI.
// Task state lives in the board.Store; the Model only holds what is needed
// to draw it and to route keys.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	store *board.Store

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	inputs [formFieldCount]textinput.Model

	// Strings
	logPath   string
	confirmID string
	notice    string // Short hint about the last failed operation

	// Numeric state
	mode       Mode
	returnMode Mode // Mode to restore when a dialog closes
	field      FormField
	width      int
	height     int
	cursor     int
}

// New creates a new TUI Model driving store. logPath is shown in the help
// view as the place where failures are recorded; it may be empty.
func New(store *board.Store, logPath string) *Model {
	heading := textinput.New()
	heading.Placeholder = "What needs doing?"

	desc := textinput.New()
	desc.Placeholder = "Details (optional)"

	status := textinput.New()
	status.Placeholder = domain.StatusPending

	return &Model{
		store:   store,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		help:    help.New(),
		inputs:  [formFieldCount]textinput.Model{heading, desc, status},
		logPath: logPath,
		mode:    ModeNormal,
	}
}

// Init loads the task list.
func (m *Model) Init() tea.Cmd {
	return m.store.LoadAll()
}

// SelectedTask returns the task under the cursor.
func (m *Model) SelectedTask() (domain.Task, bool) {
	tasks := m.store.View().Tasks
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[m.cursor], true
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// applyResult hands a remote result to the store and refreshes the widgets
// from the new state.
func (m *Model) applyResult(msg board.Msg) tea.Cmd {
	if failed, ok := msg.(board.MsgRemoteFailed); ok {
		m.notice = failed.Op + " failed"
	}
	cmd := m.store.Apply(msg)
	m.syncFromStore()
	return cmd
}

// syncFromStore copies the store snapshot into the cursor, the inputs and
// the mode.
func (m *Model) syncFromStore() {
	view := m.store.View()

	if m.cursor >= len(view.Tasks) {
		m.cursor = len(view.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	values := [formFieldCount]string{view.Draft.Heading, view.Draft.Description, view.Draft.Status}
	for i := range m.inputs {
		if m.inputs[i].Value() != values[i] {
			m.inputs[i].SetValue(values[i])
		}
	}

	switch {
	case view.FormVisible && m.mode == ModeNormal:
		m.mode = ModeForm
		m.focusField()
	case !view.FormVisible && m.mode == ModeForm:
		m.mode = ModeNormal
		m.blurInputs()
	}
}

// focusField focuses the current form field.
func (m *Model) focusField() {
	m.blurInputs()
	m.inputs[m.field].Focus()
}

func (m *Model) blurInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}
