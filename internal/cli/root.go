// Package cli provides the command-line interface for todoboard.
package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/todoboard/internal/app"
	"github.com/runoshun/todoboard/internal/tui"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for todoboard.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var baseURL string

	root := &cobra.Command{
		Use:   "todoboard",
		Short: "Terminal board for a remote to-do service",
		Long: `todoboard is a terminal client for a remote to-do service.

Without a subcommand it opens the interactive board. The task commands
talk to the same service and are meant for scripts.

The service URL comes from the configuration files, the
TODOBOARD_BASE_URL environment variable, or --base-url.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			if baseURL != "" {
				c.UseBaseURL(baseURL)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "Task service URL (overrides configuration)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	serveCmd := newServeCommand(c)
	serveCmd.GroupID = groupSetup

	// Task management commands
	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	root.AddCommand(
		configCmd,
		serveCmd,
		listCmd,
		showCmd,
		addCmd,
		editCmd,
		rmCmd,
		tuiCmd,
	)

	return root
}

// launchTUI runs the interactive board until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil {
		return errors.New("no configuration loaded")
	}
	model := tui.New(c.BoardStore(), c.LogPath())
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
