// Package codec converts an emotion log to and from its JSON and CSV
// interchange formats.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"tableflip.dev/mindmap/pkg/entry"
)

// DecodeError reports structurally invalid input. Nothing decoded from the
// input should be applied when it is returned.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("codec: decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SerializeJSON renders entries as a two-space indented array. Field order is
// emotion, intensity, context, journal, timestamp; absent optional fields are
// omitted.
func SerializeJSON(entries []entry.Entry) (string, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ParseJSON decodes an array produced by SerializeJSON. A JSON null decodes
// to an empty log.
func ParseJSON(text string) ([]entry.Entry, error) {
	var entries []entry.Entry
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return nil, &DecodeError{Format: "json", Err: err}
	}
	if entries == nil {
		entries = []entry.Entry{}
	}
	return entries, nil
}
