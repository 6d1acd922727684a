package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/tracker"
)

// MarkCmd implements the taskline mark-in-progress and mark-done commands.
type MarkCmd struct {
	flags *Flags
	app   *tracker.App
}

// NewMarkCmd creates the status marking commands.
func NewMarkCmd(flags *Flags, app *tracker.App) *MarkCmd {
	return &MarkCmd{flags: flags, app: app}
}

// Register adds both mark commands to the application.
func (cmd *MarkCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "mark-in-progress",
			Usage:     "Mark a task as in-progress",
			UsageText: "taskline mark-in-progress <id>",
			Action: func(ctx context.Context, c *cli.Command) error {
				return cmd.run(c, task.StatusInProgress)
			},
		},
		&cli.Command{
			Name:      "mark-done",
			Usage:     "Mark a task as done",
			UsageText: "taskline mark-done <id>",
			Action: func(ctx context.Context, c *cli.Command) error {
				return cmd.run(c, task.StatusDone)
			},
		},
	)

	return app
}

func (cmd *MarkCmd) run(c *cli.Command, status task.Status) error {
	out := c.Root().Writer

	if c.NArg() < 1 {
		_, _ = fmt.Fprintln(out, "failed to parse id")
		return nil
	}

	id, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}

	if err := cmd.app.Tasks.Mark(id, status); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			_, _ = fmt.Fprintf(out, "Task not available, please create new task with ID: %d\n", id)
			return nil
		}
		return fmt.Errorf("mark task: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Task updated successfully (ID: %d)\n", id)
	return nil
}
