package taskfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/taskline/internal/core/task"
)

// Positional field order of a record body. The format carries field
// names, but the decoder never looks at them; position is authoritative.
const (
	fieldID = iota
	fieldDescription
	fieldStatus
	fieldCreatedAt
	fieldUpdatedAt
	fieldCount
)

// Decode parses a store blob back into a task map.
//
// The grammar is not JSON, even though the encoder's output looks like
// it. Every quote character is stripped up front (including quotes the
// user typed inside a description), and the remaining text is carved
// purely on the structural delimiters. Decode must stay the exact
// inverse of Encode for well-behaved descriptions and exactly as
// broken as Encode for hostile ones.
//
// Any malformed numeric field or short record aborts the whole load;
// there is no partial recovery.
func Decode(data []byte) (map[uint32]task.Task, error) {
	tasks := map[uint32]task.Task{}

	segments := tokenize(string(data))
	if len(segments) == 0 {
		return tasks, nil
	}

	// segments[0] is the top-level "tasks" wrapper; the rest alternate
	// record key, record body.
	var keyID uint32
	for i, seg := range segments[1:] {
		if i%2 == 0 {
			id, err := parseKey(seg)
			if err != nil {
				return nil, err
			}
			keyID = id
			continue
		}

		t, err := parseBody(seg)
		if err != nil {
			return nil, err
		}
		if t.ID != keyID {
			log.Warn().
				Uint32("key_id", keyID).
				Uint32("embedded_id", t.ID).
				Msg("record key and embedded id don't match")
		}
		tasks[t.ID] = t
	}

	return tasks, nil
}

// tokenize splits the raw text into segments: strip all quotes, cut on
// every { and }, trim whitespace and trailing colons, drop empties.
func tokenize(text string) []string {
	text = strings.ReplaceAll(text, `"`, "")

	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '{' || r == '}'
	})

	segments := make([]string, 0, len(raw))
	for _, seg := range raw {
		seg = strings.TrimSpace(seg)
		seg = strings.TrimRight(seg, ":")
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
	}

	return segments
}

// parseKey parses a record key segment: a bare task id, possibly still
// carrying the comma that separated it from the previous record.
func parseKey(seg string) (uint32, error) {
	text := strings.TrimSpace(strings.Trim(seg, ","))

	id, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse task id from record key %q: %w", seg, err)
	}

	return uint32(id), nil
}

// parseBody parses one record body: five comma-separated fields read
// positionally. Each field is cut on ":" and the piece after the first
// colon taken as the value, so a value containing its own colon is
// silently truncated there.
func parseBody(seg string) (task.Task, error) {
	fields := strings.Split(seg, ",")
	if len(fields) != fieldCount {
		return task.Task{}, fmt.Errorf("task record has %d fields, want %d", len(fields), fieldCount)
	}

	values := make([]string, fieldCount)
	for i, field := range fields {
		pieces := strings.Split(field, ":")
		if len(pieces) < 2 {
			return task.Task{}, fmt.Errorf("task field %q has no value", strings.TrimSpace(field))
		}
		values[i] = pieces[1]
	}

	id, err := strconv.ParseUint(strings.TrimSpace(values[fieldID]), 10, 32)
	if err != nil {
		return task.Task{}, fmt.Errorf("parse embedded task id: %w", err)
	}

	createdAt, err := parseEpoch(values[fieldCreatedAt])
	if err != nil {
		return task.Task{}, fmt.Errorf("parse created_at: %w", err)
	}

	updatedAt, err := parseEpoch(values[fieldUpdatedAt])
	if err != nil {
		return task.Task{}, fmt.Errorf("parse updated_at: %w", err)
	}

	// Unknown status text silently degrades to todo. Only numeric
	// fields are load-fatal.
	status, _ := task.ParseStatus(strings.TrimSpace(values[fieldStatus]))

	return task.Task{
		ID:          uint32(id),
		Description: strings.TrimSpace(values[fieldDescription]),
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// parseEpoch parses a seconds-since-epoch field value.
func parseEpoch(text string) (time.Time, error) {
	secs, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(secs), 0), nil
}
