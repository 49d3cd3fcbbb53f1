package app

import (
	"fmt"

	"tableflip.dev/mindmap/pkg/codec"
	"tableflip.dev/mindmap/pkg/entry"
)

// ImportOutcome reports how many entries an import file yielded and how many
// of those were new to the log.
type ImportOutcome struct {
	Format Format `json:"format"`
	Parsed int    `json:"parsed"`
	Merged int    `json:"merged"`
}

// Duplicates is the number of parsed entries already present in the log.
func (o ImportOutcome) Duplicates() int {
	return o.Parsed - o.Merged
}

// Message is the user-facing summary of the import.
func (o ImportOutcome) Message() string {
	name := "import"
	switch o.Format {
	case FormatCSV:
		name = "CSV file"
	case FormatJSON:
		name = "JSON file"
	}
	switch {
	case o.Parsed == 0:
		return fmt.Sprintf("No valid data found in the %s", name)
	case o.Merged == 0:
		return fmt.Sprintf("All data from the %s already exists in your logs", name)
	default:
		return fmt.Sprintf("Successfully imported %d new emotion logs!", o.Merged)
	}
}

// ImportCSV parses text as CSV and merges the rows. Rows that cannot be
// resolved are dropped by the parser and never reported as errors.
func (s *LogStore) ImportCSV(text string) (ImportOutcome, error) {
	parsed := s.csv.Parse(text)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.merge(FormatCSV, parsed)
}

// ImportJSON parses text as an exported JSON log and merges it. Unlike CSV,
// a JSON import is all or nothing: malformed JSON or any invalid entry fails
// with a *codec.DecodeError and leaves the log untouched.
func (s *LogStore) ImportJSON(text string) (ImportOutcome, error) {
	parsed, err := codec.ParseJSON(text)
	if err != nil {
		return ImportOutcome{Format: FormatJSON}, err
	}
	if err := validateAll(parsed); err != nil {
		return ImportOutcome{Format: FormatJSON}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.merge(FormatJSON, parsed)
}

// validateAll normalizes entries in place. The first invalid entry fails the
// whole batch with a *codec.DecodeError.
func validateAll(entries []entry.Entry) error {
	for i := range entries {
		e, err := entry.Validate(entries[i].Candidate())
		if err != nil {
			return &codec.DecodeError{Format: "json", Err: fmt.Errorf("entry %d: %w", i, err)}
		}
		entries[i] = e
	}
	return nil
}

// Import merges text in the given format.
func (s *LogStore) Import(f Format, text string) (ImportOutcome, error) {
	switch f {
	case FormatCSV:
		return s.ImportCSV(text)
	case FormatJSON:
		return s.ImportJSON(text)
	default:
		return ImportOutcome{}, fmt.Errorf("app: unsupported import format %q", f)
	}
}

// merge prepends parsed entries whose timestamps are not yet in the log, in
// file order. Existing entries are never overwritten. Callers hold mu.
func (s *LogStore) merge(f Format, parsed []entry.Entry) (ImportOutcome, error) {
	out := ImportOutcome{Format: f, Parsed: len(parsed)}

	known := make(map[string]struct{}, len(s.entries)+len(parsed))
	for _, e := range s.entries {
		known[e.Timestamp] = struct{}{}
	}
	fresh := make([]entry.Entry, 0, len(parsed))
	for _, e := range parsed {
		if _, dup := known[e.Timestamp]; dup {
			continue
		}
		known[e.Timestamp] = struct{}{}
		fresh = append(fresh, e)
	}

	out.Merged = len(fresh)
	if len(fresh) == 0 {
		return out, nil
	}
	s.entries = append(fresh, s.entries...)
	return out, s.saveLog()
}
