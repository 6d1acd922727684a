package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionAdd(t *testing.T) {
	c := NewCollection()

	id := c.Add("task_a")
	assert.Equal(t, uint32(0), id)

	got, ok := c.Get(0)
	require.True(t, ok)
	assert.Equal(t, uint32(0), got.ID)
	assert.Equal(t, "task_a", got.Description)
	assert.Equal(t, StatusTodo, got.Status)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	assert.True(t, c.Dirty())
}

func TestCollectionAddReusesSmallestID(t *testing.T) {
	c := NewCollection()

	require.Equal(t, uint32(0), c.Add("a"))
	require.Equal(t, uint32(1), c.Add("b"))
	require.Equal(t, uint32(2), c.Add("c"))

	require.NoError(t, c.Delete(1))

	assert.Equal(t, uint32(1), c.Add("d"))
	assert.Equal(t, uint32(3), c.Add("e"))
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		keys []uint32
		want uint32
	}{
		{name: "empty", keys: nil, want: 0},
		{name: "contiguous", keys: []uint32{0, 1, 2}, want: 3},
		{name: "gap", keys: []uint32{0, 2, 3}, want: 1},
		{name: "zero free", keys: []uint32{1, 2}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[uint32]Task{}
			for _, k := range tt.keys {
				m[k] = Task{ID: k}
			}
			assert.Equal(t, tt.want, NextID(m))
		})
	}
}

func TestCollectionUpdate(t *testing.T) {
	c := NewCollection()
	c.Add("task_a")

	before, _ := c.Get(0)

	require.NoError(t, c.Update(0, "task_b"))

	got, ok := c.Get(0)
	require.True(t, ok)
	assert.Equal(t, "task_b", got.Description)
	assert.Equal(t, StatusTodo, got.Status)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(before.UpdatedAt))
}

func TestCollectionUpdateNotFound(t *testing.T) {
	c := NewCollection()

	err := c.Update(42, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, c.Dirty())
}

func TestCollectionMark(t *testing.T) {
	c := NewCollection()
	c.Add("task_a")

	require.NoError(t, c.Mark(0, StatusInProgress))
	got, _ := c.Get(0)
	assert.Equal(t, StatusInProgress, got.Status)
	assert.Equal(t, "task_a", got.Description)

	require.NoError(t, c.Mark(0, StatusDone))
	got, _ = c.Get(0)
	assert.Equal(t, StatusDone, got.Status)

	assert.ErrorIs(t, c.Mark(9, StatusDone), ErrNotFound)
}

func TestCollectionDelete(t *testing.T) {
	c := NewCollection()
	c.Add("task_a")

	require.NoError(t, c.Delete(0))
	assert.Equal(t, 0, c.Len())

	assert.ErrorIs(t, c.Delete(0), ErrNotFound)
}

func TestCollectionListFilter(t *testing.T) {
	c := NewCollection()
	c.Add("a") // 0
	c.Add("b") // 1
	c.Add("c") // 2
	require.NoError(t, c.Mark(1, StatusDone))
	require.NoError(t, c.Mark(2, StatusInProgress))

	all := c.List(nil)
	assert.Len(t, all, 3)

	done := StatusDone
	got := c.List(&done)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(1), got[0].ID)

	todo := StatusTodo
	got = c.List(&todo)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(0), got[0].ID)
}

func TestCollectionListDoesNotDirty(t *testing.T) {
	c := FromTasks(map[uint32]Task{
		0: {ID: 0, Description: "a", Status: StatusTodo, CreatedAt: time.Now(), UpdatedAt: time.Now()},
	})

	_ = c.List(nil)
	assert.False(t, c.Dirty())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   Status
		wantOK bool
	}{
		{in: "todo", want: StatusTodo, wantOK: true},
		{in: "in-progress", want: StatusInProgress, wantOK: true},
		{in: "done", want: StatusDone, wantOK: true},
		{in: "finished", want: StatusTodo, wantOK: false},
		{in: "", want: StatusTodo, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStatus(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
