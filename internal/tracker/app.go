// Package tracker wires the task collection and its store into one
// application object consumed by the CLI commands.
package tracker

import (
	"github.com/colonyops/taskline/internal/core/config"
	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/store/taskfile"
)

// App is the central entry point for all taskline operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	Tasks  *task.Collection
	Store  *taskfile.Store
	Config *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(tasks *task.Collection, store *taskfile.Store, cfg *config.Config) *App {
	return &App{
		Tasks:  tasks,
		Store:  store,
		Config: cfg,
	}
}

// Flush rewrites the store if and only if a mutating command ran.
// Read-only invocations never touch the file.
func (a *App) Flush() error {
	if !a.Tasks.Dirty() {
		return nil
	}
	return a.Store.Save(a.Tasks)
}
