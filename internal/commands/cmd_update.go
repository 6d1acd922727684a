package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/tracker"
)

// UpdateCmd implements the taskline update command.
type UpdateCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewUpdateCmd creates a new update command.
func NewUpdateCmd(flags *Flags, app *tracker.App) *UpdateCmd {
	return &UpdateCmd{flags: flags, app: app}
}

// Register adds the update command to the application.
func (cmd *UpdateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "update",
		Usage:     "Replace a task's description",
		UsageText: "taskline update <id> <description>",
		Description: `Replaces the description of an existing task. Status and creation
time are kept; the update time is bumped.

Examples:
  taskline update 2 "Buy groceries and cook dinner"`,
		Action: cmd.run,
	})

	return app
}

func (cmd *UpdateCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer

	if c.NArg() < 1 {
		_, _ = fmt.Fprintln(out, "failed to parse id")
		return nil
	}
	if c.NArg() < 2 {
		_, _ = fmt.Fprintln(out, "failed to parse updated task")
		return nil
	}

	id, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}

	if err := cmd.app.Tasks.Update(id, c.Args().Get(1)); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			_, _ = fmt.Fprintf(out, "Task not available, please create new task with ID: %d\n", id)
			return nil
		}
		return fmt.Errorf("update task: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Task updated successfully (ID: %d)\n", id)
	return nil
}
