package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/todoboard/internal/app"
)

// newTUICommand creates the tui command for launching the interactive board.
// It is the same as running todoboard without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive board",
		Long: `Launch the interactive task board.

Keys:
  n          toggle the task form
  e, enter   load the selected task into the form
  d          delete the selected task (asks for confirmation)
  r          reload the task list
  tab        next form field (shift+tab: previous)
  enter      submit the form
  esc        close the form
  ?          help
  q          quit

Failures are written to the log file rather than the screen.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
