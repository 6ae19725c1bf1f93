package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/todoboard/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color

	// Status colors
	Pending lipgloss.Color
	Done    lipgloss.Color
	Other   lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray

	Pending: lipgloss.Color("#74B9FF"), // Light blue
	Done:    lipgloss.Color("#00B894"), // Green
	Other:   lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Task table
	TableHeader       lipgloss.Style
	TaskTitle         lipgloss.Style
	TaskTitleSelected lipgloss.Style
	TaskDesc          lipgloss.Style
	TaskDescSelected  lipgloss.Style
	CursorNormal      lipgloss.Style
	CursorSelected    lipgloss.Style
	EmptyState        lipgloss.Style

	// Status badges
	StatusPending lipgloss.Style
	StatusDone    lipgloss.Style
	StatusOther   lipgloss.Style

	// Help
	SectionLabel lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt        lipgloss.Style
	InputPromptFocused lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		TableHeader: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Bold(true),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		TaskDescSelected: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		EmptyState: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Pending),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		StatusOther: lipgloss.NewStyle().
			Foreground(Colors.Other),

		SectionLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(13),

		InputPromptFocused: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true).
			Width(13),
	}
}

// StatusStyle returns the style for a task's status label.
// Status is free text; labels other than Pending and Done share one style.
func (s Styles) StatusStyle(task domain.Task) lipgloss.Style {
	switch {
	case task.IsDone():
		return s.StatusDone
	case task.Status == domain.StatusPending:
		return s.StatusPending
	default:
		return s.StatusOther
	}
}

// StatusIcon returns an icon for a task's status label.
func StatusIcon(task domain.Task) string {
	switch {
	case task.IsDone():
		return "✓"
	case task.Status == domain.StatusPending:
		return "○"
	case task.Status == "":
		return " "
	default:
		return "●"
	}
}
