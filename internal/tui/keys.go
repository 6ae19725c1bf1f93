package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task management
	New     key.Binding // Toggle the task form
	Edit    key.Binding // Load the selected task into the form
	Delete  key.Binding // Delete the selected task
	Refresh key.Binding // Reload the task list

	// Form
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	FormEdit   key.Binding // Edit the selected row without leaving the form
	FormDelete key.Binding // Delete the selected row without leaving the form

	// General
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding // Cancel/back
	Confirm key.Binding // Confirm action (in confirm mode)
	Cancel  key.Binding // Reject action (in confirm mode)
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		FormEdit: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "edit selected"),
		),
		FormDelete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete selected"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.New, k.Edit, k.Delete, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},                       // Navigation
		{k.New, k.Edit, k.Delete, k.Refresh}, // Task management
		{k.NextField, k.PrevField, k.Submit}, // Form
		{k.FormEdit, k.FormDelete, k.Escape}, // Form shortcuts
		{k.Help, k.Quit},                     // General
	}
}

// formHelp is the key map shown under the task form.
type formHelp struct {
	keys KeyMap
}

// ShortHelp returns keybindings to show under the form.
func (f formHelp) ShortHelp() []key.Binding {
	return []key.Binding{f.keys.NextField, f.keys.Submit, f.keys.FormEdit, f.keys.FormDelete, f.keys.Escape}
}

// FullHelp returns the same bindings as ShortHelp in one column.
func (f formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}
