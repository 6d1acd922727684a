package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskline/internal/core/config"
	"github.com/colonyops/taskline/internal/core/task"
	"github.com/colonyops/taskline/internal/store/taskfile"
)

func newApp(t *testing.T) (*App, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.json")
	cfg := config.DefaultConfig()

	return NewApp(task.NewCollection(), taskfile.NewStore(path), &cfg), path
}

func TestFlushSkipsWriteWhenClean(t *testing.T) {
	app, path := newApp(t)

	require.NoError(t, app.Flush())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "clean collection must not create a store file")
}

func TestFlushWritesWhenDirty(t *testing.T) {
	app, path := newApp(t)
	app.Tasks.Add("task_a")

	require.NoError(t, app.Flush())

	loaded, err := app.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
