package taskfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskline/internal/core/task"
)

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "tasks.json"))

	c, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Dirty())
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewStore(path)

	c := task.NewCollection()
	c.Add("task_a")
	c.Add("task_b")
	require.NoError(t, c.Mark(1, task.StatusDone))

	require.NoError(t, store.Save(c))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.False(t, loaded.Dirty(), "fresh load must not be dirty")
	require.Equal(t, 2, loaded.Len())

	a, ok := loaded.Get(0)
	require.True(t, ok)
	assert.Equal(t, "task_a", a.Description)
	assert.Equal(t, task.StatusTodo, a.Status)

	b, ok := loaded.Get(1)
	require.True(t, ok)
	assert.Equal(t, "task_b", b.Description)
	assert.Equal(t, task.StatusDone, b.Status)
}

func TestStoreSaveOverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewStore(path)

	c := task.NewCollection()
	c.Add("first")
	c.Add("second")
	require.NoError(t, store.Save(c))

	require.NoError(t, c.Delete(1))
	require.NoError(t, store.Save(c))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())

	_, ok := loaded.Get(1)
	assert.False(t, ok)
}

func TestStoreLoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	blob := Encode(map[uint32]task.Task{
		0: {ID: 0, Description: "x", Status: task.StatusTodo, CreatedAt: time.Unix(1, 0), UpdatedAt: time.Unix(1, 0)},
	})
	corrupted := []byte(strings.Replace(blob, "\"created_at\": 1", "\"created_at\": soon", 1))
	require.NoError(t, os.WriteFile(path, corrupted, 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}
