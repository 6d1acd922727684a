package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/tracker"
)

// AddCmd implements the taskline add command.
type AddCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *tracker.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: "taskline add <description>",
		Description: `Creates a new task with status todo.

The task gets the smallest id not currently in use, so ids freed by
delete are reused immediately.

Examples:
  taskline add "Buy groceries"`,
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		// Missing description is a user input error, not a fatal one.
		_, _ = fmt.Fprintln(c.Root().Writer, "failed to parse task")
		return nil
	}

	id := cmd.app.Tasks.Add(c.Args().Get(0))

	_, _ = fmt.Fprintf(c.Root().Writer, "Task added successfully (ID: %d)\n", id)
	return nil
}
