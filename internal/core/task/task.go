// Package task defines the tracked task domain model.
package task

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a task id does not exist in the collection.
var ErrNotFound = errors.New("task not found")

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// IsValid reports whether s is one of the three known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus maps status text to a Status. Unknown text maps to
// StatusTodo with ok=false; callers decide whether that is a warning
// (CLI filter) or silently accepted (store decode).
func ParseStatus(text string) (Status, bool) {
	s := Status(text)
	if s.IsValid() {
		return s, true
	}
	return StatusTodo, false
}

// Task represents a single tracked unit of work.
type Task struct {
	ID          uint32
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
