package taskfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/taskline/internal/core/task"
)

// epochSeconds converts a timestamp to whole seconds since the Unix
// epoch, clamping to 0 for times the format cannot represent.
func epochSeconds(t time.Time) uint64 {
	secs := t.Unix()
	if secs < 0 {
		return 0
	}
	return uint64(secs)
}

// Encode renders the whole collection as one store blob: a top-level
// object keyed "tasks" wrapping one record per task.
//
// Description text is written verbatim between the quotes. Nothing is
// escaped, so a description containing braces, commas, or colons
// produces a blob the decoder cannot parse back. That fragility is
// part of the format's contract and must not be papered over here.
//
// Iteration over the map is unspecified, so record order varies
// between runs with identical data.
func Encode(tasks map[uint32]task.Task) string {
	var b strings.Builder

	i, n := 0, len(tasks)
	for id, t := range tasks {
		fmt.Fprintf(&b, "\n\"%d\" : { %s }", id, encodeTask(t))
		if i < n-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
		i++
	}

	return fmt.Sprintf("{\n \"tasks\": { %s } \n }\n", b.String())
}

// encodeTask renders one task body: five fields, fixed order, comma
// and newline separated.
func encodeTask(t task.Task) string {
	return fmt.Sprintf("\n\"id\":%d,\n\"description\": \"%s\",\n\"status\": \"%s\",\n\"created_at\": %d,\n\"updated_at\": %d\n",
		t.ID, t.Description, t.Status, epochSeconds(t.CreatedAt), epochSeconds(t.UpdatedAt))
}
