// Package taskfile persists the task collection as a single text file
// in a bespoke, JSON-looking format.
//
// The format is deliberately not JSON: the decoder strips every quote
// character before parsing and relies on braces, commas, and colons
// alone. See Encode and Decode for the exact grammar.
package taskfile

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/taskline/internal/core/task"
)

// DefaultPath is the store file location relative to the working
// directory.
const DefaultPath = "tasks.json"

// Store reads and rewrites the task store file. Every save is a full
// overwrite in place; there is no temp-file rename, no backup, and no
// cross-process locking. Concurrent invocations race, last writer wins.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole store file into a collection. A missing or
// unreadable file yields an empty collection; a malformed file is a
// fatal error. The returned collection is never dirty.
func (s *Store) Load() (*task.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("store file not readable, starting empty")
		return task.NewCollection(), nil
	}

	tasks, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode store file %s: %w", s.path, err)
	}

	return task.FromTasks(tasks), nil
}

// Save rewrites the entire store file from the collection.
func (s *Store) Save(c *task.Collection) error {
	blob := Encode(c.Tasks())

	if err := os.WriteFile(s.path, []byte(blob), 0o644); err != nil {
		return fmt.Errorf("write store file %s: %w", s.path, err)
	}

	return nil
}
