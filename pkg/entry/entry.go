// Package entry defines the emotion log record and its validity rules.
package entry

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MinIntensity is the lowest intensity an entry may carry.
	MinIntensity = 1
	// MaxIntensity is the highest intensity an entry may carry.
	MaxIntensity = 10
	// DefaultIntensity is used when a value is missing or unreadable.
	DefaultIntensity = 5
)

// Entry is one logged emotion observation. Timestamp is the identity key of
// the entry inside a log and is kept verbatim so that exports round-trip.
type Entry struct {
	Emotion   string `json:"emotion" yaml:"emotion"`
	Intensity int    `json:"intensity" yaml:"intensity"`
	Context   string `json:"context,omitempty" yaml:"context,omitempty"`
	Journal   string `json:"journal,omitempty" yaml:"journal,omitempty"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Candidate is the unvalidated input for a new entry.
type Candidate struct {
	Emotion   string
	Intensity int
	Context   string
	Journal   string
	Timestamp string
}

// ValidationError reports the first field that made a candidate invalid.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entry: invalid %s: %s", e.Field, e.Reason)
}

// Validate normalizes a candidate and checks it against the entry invariants.
// Text fields are trimmed and empty optional text becomes absent. Intensity
// outside [MinIntensity, MaxIntensity] is rejected rather than clamped.
func Validate(c Candidate) (Entry, error) {
	emotion := strings.TrimSpace(c.Emotion)
	if emotion == "" {
		return Entry{}, &ValidationError{Field: "emotion", Reason: "must not be empty"}
	}
	if c.Intensity < MinIntensity || c.Intensity > MaxIntensity {
		return Entry{}, &ValidationError{
			Field:  "intensity",
			Reason: fmt.Sprintf("%d is outside %d-%d", c.Intensity, MinIntensity, MaxIntensity),
		}
	}
	ts := strings.TrimSpace(c.Timestamp)
	if _, err := ParseTime(ts); err != nil {
		return Entry{}, &ValidationError{Field: "timestamp", Reason: fmt.Sprintf("%q is not an ISO-8601 instant", c.Timestamp)}
	}
	return Entry{
		Emotion:   emotion,
		Intensity: c.Intensity,
		Context:   normalizeText(c.Context),
		Journal:   normalizeText(c.Journal),
		Timestamp: ts,
	}, nil
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeText trims and folds CRLF and lone CR to LF, so stored text reads
// back the same from CSV.
func normalizeText(v string) string {
	return strings.TrimSpace(newlines.Replace(v))
}

// Candidate returns the entry as input for Validate.
func (e Entry) Candidate() Candidate {
	return Candidate{
		Emotion:   e.Emotion,
		Intensity: e.Intensity,
		Context:   e.Context,
		Journal:   e.Journal,
		Timestamp: e.Timestamp,
	}
}

// Time parses the entry timestamp.
func (e Entry) Time() (time.Time, error) {
	return ParseTime(e.Timestamp)
}

// Day returns the calendar day of the entry in loc as yyyy-MM-dd.
func (e Entry) Day(loc *time.Location) (string, bool) {
	t, err := e.Time()
	if err != nil {
		return "", false
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(LayoutDay), true
}
