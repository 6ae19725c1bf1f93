package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/todoboard/internal/domain"
)

const (
	cursorWidth   = 2
	statusWidth   = 14
	minRowWidth   = 40
	minColumnSize = 8
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeForm, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the task table with the form and dialogs.
func (m *Model) viewMain() string {
	view := m.store.View()

	var b strings.Builder

	b.WriteString(m.viewHeader(len(view.Tasks)))
	b.WriteString("\n")

	b.WriteString(m.viewTaskTable(view.Tasks))

	if view.FormVisible {
		b.WriteString("\n")
		b.WriteString(m.viewForm(view.Draft))
	}

	if m.mode == ModeConfirm {
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// rowWidth is the usable width inside the app padding.
func (m *Model) rowWidth() int {
	w := m.width - 6
	if w < minRowWidth {
		w = minRowWidth
	}
	return w
}

// viewHeader renders the header with "Tasks" and the task count.
func (m *Model) viewHeader(count int) string {
	title := m.styles.HeaderText.Render("Tasks")

	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(fmt.Sprintf("%d %s", count, noun))

	spacing := m.rowWidth() - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// columnWidths splits the row into heading and description columns.
func (m *Model) columnWidths() (heading, desc int) {
	rest := m.rowWidth() - cursorWidth - statusWidth - 2 // two column gaps
	heading = rest * 2 / 5
	if heading < minColumnSize {
		heading = minColumnSize
	}
	desc = rest - heading
	if desc < minColumnSize {
		desc = minColumnSize
	}
	return heading, desc
}

// viewTaskTable renders one row per task in collection order.
func (m *Model) viewTaskTable(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return m.styles.EmptyState.Render("No tasks yet. Press n to add one.") + "\n"
	}

	headingW, descW := m.columnWidths()

	var b strings.Builder
	header := strings.Repeat(" ", cursorWidth) +
		runewidth.FillRight("HEADING", headingW) + " " +
		runewidth.FillRight("DESCRIPTION", descW) + " " +
		"STATUS"
	b.WriteString(m.styles.TableHeader.Render(header))
	b.WriteString("\n")

	for i, task := range tasks {
		b.WriteString(m.renderTaskRow(task, i == m.cursor, headingW, descW))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTaskRow renders a single table row.
func (m *Model) renderTaskRow(task domain.Task, selected bool, headingW, descW int) string {
	cursorStyle := m.styles.CursorNormal
	headingStyle := m.styles.TaskTitle
	descStyle := m.styles.TaskDesc
	cursor := "  "
	if selected {
		cursorStyle = m.styles.CursorSelected
		headingStyle = m.styles.TaskTitleSelected
		descStyle = m.styles.TaskDescSelected
		cursor = "> "
	}

	heading := fitColumn(task.Heading, headingW)
	desc := fitColumn(task.Description, descW)
	status := StatusIcon(task) + " " + runewidth.Truncate(escapeNewlines(task.Status), statusWidth-2, "...")

	statusStyle := m.styles.StatusStyle(task)
	if selected {
		statusStyle = statusStyle.Bold(true)
	}

	return cursorStyle.Render(cursor) +
		headingStyle.Render(heading) + " " +
		descStyle.Render(desc) + " " +
		statusStyle.Render(status)
}

// fitColumn truncates s to width display cells and pads it to exactly width.
func fitColumn(s string, width int) string {
	s = runewidth.Truncate(escapeNewlines(s), width, "...")
	return runewidth.FillRight(s, width)
}

// escapeNewlines keeps multi-line values on one table row.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "↵")
}

// viewForm renders the task form.
func (m *Model) viewForm(draft domain.TaskDraft) string {
	titleText := "◆ New Task"
	if draft.IsEditing() {
		titleText = "◆ Edit Task"
	}
	title := m.styles.DialogTitle.Render(titleText)

	lines := []string{title}
	if draft.IsEditing() {
		lines = append(lines, m.styles.Footer.Render("id "+draft.TargetID()))
	}
	lines = append(lines, "")

	for i := range m.inputs {
		field := FormField(i)
		labelStyle := m.styles.InputPrompt
		if m.mode == ModeForm && field == m.field {
			labelStyle = m.styles.InputPromptFocused
		}
		lines = append(lines, labelStyle.Render(field.Label())+m.inputs[i].View())
	}

	lines = append(lines, "", m.help.ShortHelpView(formHelp{keys: m.keys}.ShortHelp()))

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// viewConfirmDialog renders the delete confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	color := Colors.Error

	target := m.confirmID
	if task, ok := domain.FindTask(m.store.View().Tasks, m.confirmID); ok && task.Heading != "" {
		target = runewidth.Truncate(escapeNewlines(task.Heading), 40, "...")
	}

	title := m.styles.DialogTitle.Foreground(color).Render(fmt.Sprintf("Delete %q?", target))
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")

	yesBtn := m.styles.HelpKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		prompt,
		"",
		buttons,
	)

	return m.styles.Dialog.BorderForeground(color).Render(content)
}

// viewFooter renders the key hints and the last failure, if any.
func (m *Model) viewFooter() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.styles.Footer.Render(m.notice + " (see log)"))
		b.WriteString("\n")
	}

	switch m.mode {
	case ModeNormal:
		b.WriteString(m.help.View(m.keys))
	case ModeForm, ModeConfirm, ModeHelp:
		// Hints are shown in the dialogs themselves
	}
	return b.String()
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")

	type bind struct {
		key  string
		desc string
	}
	sections := []struct {
		name  string
		binds []bind
	}{
		{
			name: "NAVIGATION",
			binds: []bind{
				{"↑/k", "Move up"},
				{"↓/j", "Move down"},
				{"r", "Refresh"},
			},
		},
		{
			name: "TASKS",
			binds: []bind{
				{"n", "Toggle form"},
				{"e/enter", "Edit task"},
				{"d", "Delete task"},
			},
		},
		{
			name: "FORM",
			binds: []bind{
				{"tab", "Next field"},
				{"s-tab", "Prev field"},
				{"enter", "Submit"},
				{"ctrl+e", "Edit selected"},
				{"ctrl+d", "Delete selected"},
				{"esc", "Close form"},
			},
		},
		{
			name: "GENERAL",
			binds: []bind{
				{"?", "Close Help"},
				{"q", "Quit"},
			},
		},
	}

	var col1, col2 strings.Builder

	renderSection := func(b *strings.Builder, sectionIdx int) {
		section := sections[sectionIdx]
		b.WriteString(m.styles.SectionLabel.Render(section.name))
		b.WriteString("\n")
		for _, bind := range section.binds {
			key := m.styles.HelpKey.Width(8).Render(bind.key)
			desc := m.styles.HelpDesc.Render(bind.desc)
			fmt.Fprintf(b, "%s %s\n", key, desc)
		}
		b.WriteString("\n")
	}

	renderSection(&col1, 0)
	renderSection(&col1, 1)
	renderSection(&col2, 2)
	renderSection(&col2, 3)

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		col1.String(),
		"    ", // Gutter
		col2.String(),
	)

	lines := []string{title, "", content}
	if m.logPath != "" {
		lines = append(lines, m.styles.Footer.Render("Failures are logged to "+m.logPath))
	}

	return m.styles.Dialog.
		BorderForeground(Colors.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
