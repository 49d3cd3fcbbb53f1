package codec

import "strings"

// Field names the logical CSV columns understood by the parser.
type Field string

const (
	FieldEmotion   Field = "emotion"
	FieldIntensity Field = "intensity"
	FieldContext   Field = "context"
	FieldJournal   Field = "journal"
	FieldDate      Field = "date"
	FieldTime      Field = "time"
	FieldTimestamp Field = "timestamp"
)

// Header is the exported column order.
var Header = []string{"Emotion", "Intensity", "Context", "Journal", "Date", "Time", "Timestamp"}

// Columns maps each field to an ordered list of lower-case header fragments.
// A header matches a fragment when it contains it, ignoring case.
type Columns map[Field][]string

// DefaultColumns matches every field on its own name.
func DefaultColumns() Columns {
	return Columns{
		FieldEmotion:   {"emotion"},
		FieldIntensity: {"intensity"},
		FieldContext:   {"context"},
		FieldJournal:   {"journal"},
		FieldDate:      {"date"},
		FieldTime:      {"time"},
		FieldTimestamp: {"timestamp"},
	}
}

// Resolve returns the column index for every field found in header. For each
// fragment in order, a header equal to the fragment wins over the first header
// merely containing it; fields with no match are absent from the result.
func (c Columns) Resolve(header []string) map[Field]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.Trim(strings.TrimSpace(h), `"`))
	}
	// A UTF-8 byte order mark only ever sits in front of the first header.
	if len(normalized) > 0 {
		normalized[0] = strings.TrimPrefix(normalized[0], "\ufeff")
	}

	found := make(map[Field]int, len(c))
	for field, fragments := range c {
		if idx, ok := resolveOne(normalized, fragments); ok {
			found[field] = idx
		}
	}
	return found
}

func resolveOne(header []string, fragments []string) (int, bool) {
	for _, fragment := range fragments {
		fragment = strings.ToLower(fragment)
		if fragment == "" {
			continue
		}
		for i, h := range header {
			if h == fragment {
				return i, true
			}
		}
		for i, h := range header {
			if strings.Contains(h, fragment) {
				return i, true
			}
		}
	}
	return -1, false
}
