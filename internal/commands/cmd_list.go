package commands

import (
	"context"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/core/styles"
	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/tracker"
)

// ListCmd implements the taskline list command.
type ListCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags, app *tracker.App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list command to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Usage:     "List tasks",
		UsageText: "taskline list [status]",
		Description: `Displays a table of all tasks with their id, description, and status.

An optional status argument filters the list. An unrecognized status
prints a warning and lists everything.

Examples:
  taskline list
  taskline list done
  taskline list in-progress`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	var filter *task.Status
	if c.NArg() > 0 {
		arg := c.Args().Get(0)
		if status, ok := task.ParseStatus(arg); ok {
			filter = &status
		} else {
			log.Warn().Str("status", arg).Msg("unknown status filter ignored")
			fmt.Fprintln(os.Stderr, "Not a valid status for task")
		}
	}

	tasks := cmd.app.Tasks.List(filter)

	// Map order is random; sort for display only.
	slices.SortFunc(tasks, func(a, b task.Task) int {
		return int(a.ID) - int(b.ID)
	})

	out := c.Root().Writer

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tDESCRIPTION\tSTATUS")

	// Only the last column is styled; ANSI escape bytes would throw
	// off tabwriter's width accounting anywhere else.
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Description, styles.StatusStyle(t.Status).Render(string(t.Status)))
	}

	return w.Flush()
}
