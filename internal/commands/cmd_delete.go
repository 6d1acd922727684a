package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/tracker"
)

// DeleteCmd implements the taskline delete command.
type DeleteCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewDeleteCmd creates a new delete command.
func NewDeleteCmd(flags *Flags, app *tracker.App) *DeleteCmd {
	return &DeleteCmd{flags: flags, app: app}
}

// Register adds the delete command to the application.
func (cmd *DeleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "delete",
		Usage:     "Delete a task",
		UsageText: "taskline delete <id>",
		Description: `Removes a task from the store. The freed id is reused by the next
taskline add.

Examples:
  taskline delete 2`,
		Action: cmd.run,
	})

	return app
}

func (cmd *DeleteCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer

	if c.NArg() < 1 {
		_, _ = fmt.Fprintln(out, "failed to parse id")
		return nil
	}

	id, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}

	if err := cmd.app.Tasks.Delete(id); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			_, _ = fmt.Fprintf(out, "Task failed to delete or does not exist (ID: %d)\n", id)
			return nil
		}
		return fmt.Errorf("delete task: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Task deleted successfully (ID: %d)\n", id)
	return nil
}
