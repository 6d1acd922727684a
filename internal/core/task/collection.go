package task

import (
	"time"
)

// Collection is the in-memory set of all tasks for one invocation,
// keyed by id. It tracks a dirty flag so callers can skip rewriting
// the store after read-only commands.
//
// Collection is not safe for concurrent use; the CLI is strictly
// single-threaded (load, one command, save).
type Collection struct {
	tasks map[uint32]Task
	dirty bool
}

// NewCollection returns an empty collection with the dirty flag clear.
func NewCollection() *Collection {
	return &Collection{tasks: map[uint32]Task{}}
}

// FromTasks builds a collection from already-persisted tasks. The
// dirty flag stays clear; a fresh load is never a pending change.
func FromTasks(tasks map[uint32]Task) *Collection {
	if tasks == nil {
		tasks = map[uint32]Task{}
	}
	return &Collection{tasks: tasks}
}

// NextID returns the smallest non-negative integer not present in keys.
// Deleted ids are reused immediately.
func NextID(keys map[uint32]Task) uint32 {
	var id uint32
	for {
		if _, ok := keys[id]; !ok {
			return id
		}
		id++
	}
}

// Dirty reports whether any mutating operation ran this invocation.
func (c *Collection) Dirty() bool {
	return c.dirty
}

// Len returns the number of tasks.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// Get returns the task with the given id.
func (c *Collection) Get(id uint32) (Task, bool) {
	t, ok := c.tasks[id]
	return t, ok
}

// Add creates a new task with the first unused id and status todo,
// returning the assigned id.
func (c *Collection) Add(description string) uint32 {
	now := time.Now()
	id := NextID(c.tasks)

	c.tasks[id] = Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	c.dirty = true

	return id
}

// Update replaces the description of an existing task, keeping its
// status and creation time. Returns ErrNotFound if the id is absent.
func (c *Collection) Update(id uint32, description string) error {
	t, ok := c.tasks[id]
	if !ok {
		return ErrNotFound
	}

	t.Description = description
	t.UpdatedAt = time.Now()
	c.tasks[id] = t
	c.dirty = true

	return nil
}

// Mark sets the status of an existing task.
// Returns ErrNotFound if the id is absent.
func (c *Collection) Mark(id uint32, status Status) error {
	t, ok := c.tasks[id]
	if !ok {
		return ErrNotFound
	}

	t.Status = status
	t.UpdatedAt = time.Now()
	c.tasks[id] = t
	c.dirty = true

	return nil
}

// Delete removes a task. Returns ErrNotFound if the id is absent.
func (c *Collection) Delete(id uint32) error {
	if _, ok := c.tasks[id]; !ok {
		return ErrNotFound
	}

	delete(c.tasks, id)
	c.dirty = true

	return nil
}

// List returns a snapshot of all tasks, optionally filtered by status.
// A nil filter means no filtering. Iteration order is unspecified.
func (c *Collection) List(filter *Status) []Task {
	out := make([]Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		if filter != nil && t.Status != *filter {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Tasks exposes the underlying map for encoding. Callers must not
// mutate it outside the Collection's own operations.
func (c *Collection) Tasks() map[uint32]Task {
	return c.tasks
}
