package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/todoboard/internal/app"
	"github.com/runoshun/todoboard/internal/domain"
	"github.com/runoshun/todoboard/internal/usecase"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display every task in the order the service returns them.

Output format is a table with columns:
  ID, STATUS, HEADING, DESCRIPTION

Examples:
  # List tasks
  todoboard list

  # Machine-readable output
  todoboard list --format json
  todoboard list --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case formatTable:
				printTaskList(w, out.Tasks)
				return nil
			case formatJSON:
				return writeJSON(w, out.Tasks)
			case formatYAML:
				return writeYAML(w, out.Tasks)
			}
			return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json or yaml")

	return cmd
}

// printTaskList prints tasks as an aligned table.
func printTaskList(w io.Writer, tasks []domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tHEADING\tDESCRIPTION")
	for _, task := range tasks {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			task.ID,
			orDash(task.Status),
			orDash(oneLine(task.Heading)),
			orDash(oneLine(task.Description)),
		)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// oneLine keeps a table cell on one line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display a task",
		Long: `Display one task.

Examples:
  todoboard show 6650f1c2
  todoboard show 6650f1c2 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{ID: args[0]})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case formatText:
				printTask(w, out.Task)
				return nil
			case formatJSON:
				return writeJSON(w, out.Task)
			case formatYAML:
				return writeYAML(w, out.Task)
			}
			return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json or yaml")

	return cmd
}

// printTask prints a task in a human-readable form.
func printTask(w io.Writer, task domain.Task) {
	_, _ = fmt.Fprintf(w, "ID:      %s\n", task.ID)
	_, _ = fmt.Fprintf(w, "Heading: %s\n", task.Heading)
	_, _ = fmt.Fprintf(w, "Status:  %s\n", orDash(task.Status))
	if task.Description != "" {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Description:")
		for _, line := range strings.Split(task.Description, "\n") {
			_, _ = fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Heading     string
		Description string
		Status      string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Long: `Create a task on the service.

Examples:
  todoboard add --heading "Buy milk"
  todoboard add --heading "Write report" --description "Q3 numbers" --status Done`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), usecase.CreateTaskInput{
				Heading:     opts.Heading,
				Description: opts.Description,
				Status:      opts.Status,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Heading, "heading", "", "Task heading")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", domain.StatusPending, "Task status")

	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Heading     string
		Description string
		Status      string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Change fields of an existing task. Fields without a flag keep their
current value.

Examples:
  todoboard edit 6650f1c2 --status Done
  todoboard edit 6650f1c2 --heading "Buy oat milk" --description ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.UpdateTaskInput{ID: args[0]}
			if cmd.Flags().Changed("heading") {
				input.Heading = &opts.Heading
			}
			if cmd.Flags().Changed("description") {
				input.Description = &opts.Description
			}
			if cmd.Flags().Changed("status") {
				input.Status = &opts.Status
			}

			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Heading, "heading", "", "New heading")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "New status")

	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task from the service.

Examples:
  todoboard rm 6650f1c2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{ID: args[0]}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}
}
