// Package app owns the canonical emotion log. LogStore is the only writer to
// persistence; the CLI, the watch loop and the MCP server all go through it.
package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tableflip.dev/mindmap/pkg/analytics"
	"tableflip.dev/mindmap/pkg/codec"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/filter"
	"tableflip.dev/mindmap/pkg/store"
)

// PersistenceError reports that the store could not be read or written. The
// in-memory log stays usable and keeps the mutation that failed to save.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("app: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var perr *PersistenceError
	return errors.As(err, &perr)
}

// LogStore holds the log in display order (newest first) and writes a full
// snapshot after every mutation.
type LogStore struct {
	mu          sync.Mutex
	persistence store.Persistence
	csv         *codec.CSV
	agg         *analytics.Aggregator
	now         func() time.Time

	entries    []entry.Entry
	goal       *Goal
	persistErr error
}

// Option configures a LogStore.
type Option func(*LogStore)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *LogStore) {
		s.now = now
		s.csv.Now = now
	}
}

// WithLocation sets the zone used for calendar days in exports and summaries.
func WithLocation(loc *time.Location) Option {
	return func(s *LogStore) {
		s.csv.Location = loc
		s.agg = analytics.New(loc)
	}
}

// WithColumns replaces the CSV column resolution strategy used by imports.
func WithColumns(cols codec.Columns) Option {
	return func(s *LogStore) {
		s.csv.Columns = cols
	}
}

// Open loads the log and goal from p. A store that cannot be read leaves the
// LogStore empty with PersistenceErr set; a snapshot that cannot be decoded
// is returned as a *codec.DecodeError.
func Open(p store.Persistence, opts ...Option) (*LogStore, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	s := &LogStore{
		persistence: p,
		csv:         codec.Default(),
		agg:         analytics.New(nil),
		now:         time.Now,
		entries:     []entry.Entry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(); err != nil && !IsPersistence(err) {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory state with what persistence holds. Nothing
// changes unless both keys are read, decoded and valid.
func (s *LogStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.persistence.Load(store.KeyLog)
	if err != nil {
		s.persistErr = &PersistenceError{Op: "load", Key: store.KeyLog, Err: err}
		return s.persistErr
	}
	entries := []entry.Entry{}
	if ok && strings.TrimSpace(raw) != "" {
		if entries, err = codec.ParseJSON(raw); err != nil {
			return err
		}
		if err := validateAll(entries); err != nil {
			return err
		}
	}

	rawGoal, ok, err := s.persistence.Load(store.KeyGoal)
	if err != nil {
		s.persistErr = &PersistenceError{Op: "load", Key: store.KeyGoal, Err: err}
		return s.persistErr
	}
	var goal *Goal
	if ok && strings.TrimSpace(rawGoal) != "" {
		g, err := decodeGoal(rawGoal)
		if err != nil {
			return err
		}
		goal = &g
	}

	s.entries = entries
	s.goal = goal
	s.persistErr = nil
	return nil
}

// PersistenceErr returns the standing persistence failure, if any. It clears
// on the next successful save.
func (s *LogStore) PersistenceErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistErr
}

// Entries returns a copy of the log in display order.
func (s *LogStore) Entries() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Len returns the number of entries.
func (s *LogStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Search returns entries whose emotion contains query, ignoring case.
func (s *LogStore) Search(query string) []entry.Entry {
	return filter.ByEmotion(s.Entries(), query)
}

// Create validates c and prepends it. A candidate without a timestamp is
// stamped with the current instant, moved forward a millisecond at a time
// until it is unique. On a save failure the entry is kept and returned along
// with a *PersistenceError.
func (s *LogStore) Create(c entry.Candidate) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(c.Timestamp) == "" {
		c.Timestamp = s.uniqueStamp()
	}
	e, err := entry.Validate(c)
	if err != nil {
		return entry.Entry{}, err
	}
	if s.indexOf(e.Timestamp) >= 0 {
		return entry.Entry{}, &entry.ValidationError{Field: "timestamp", Reason: fmt.Sprintf("%s is already logged", e.Timestamp)}
	}

	s.entries = append([]entry.Entry{e}, s.entries...)
	return e, s.saveLog()
}

// Delete removes the entry with the given timestamp and reports whether one
// was found.
func (s *LogStore) Delete(timestamp string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(strings.TrimSpace(timestamp))
	if i < 0 {
		return false, nil
	}
	next := make([]entry.Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:i]...)
	next = append(next, s.entries[i+1:]...)
	s.entries = next
	return true, s.saveLog()
}

// Clear removes every entry.
func (s *LogStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []entry.Entry{}
	return s.saveLog()
}

// WeeklySummary summarizes the last seven days.
func (s *LogStore) WeeklySummary() analytics.WeeklySummary {
	return s.agg.Weekly(filter.TrailingWindow(s.Entries(), filter.Week, s.now()))
}

// MonthlySummary summarizes the last thirty days.
func (s *LogStore) MonthlySummary() analytics.MonthlySummary {
	return s.agg.Monthly(filter.TrailingWindow(s.Entries(), filter.Month, s.now()))
}

// Dashboard returns the full analytics view as of now.
func (s *LogStore) Dashboard() analytics.Dashboard {
	return s.agg.Dashboard(s.Entries(), s.now())
}

// Now returns the store clock.
func (s *LogStore) Now() time.Time {
	return s.now()
}

func (s *LogStore) snapshot() []entry.Entry {
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *LogStore) indexOf(timestamp string) int {
	for i, e := range s.entries {
		if e.Timestamp == timestamp {
			return i
		}
	}
	return -1
}

func (s *LogStore) uniqueStamp() string {
	t := s.now().UTC().Truncate(time.Millisecond)
	for {
		ts := entry.FormatTimestamp(t)
		if s.indexOf(ts) < 0 {
			return ts
		}
		t = t.Add(time.Millisecond)
	}
}

// saveLog writes the snapshot; callers hold mu.
func (s *LogStore) saveLog() error {
	raw, err := codec.SerializeJSON(s.entries)
	if err != nil {
		return fmt.Errorf("app: encode log: %w", err)
	}
	if err := s.persistence.Save(store.KeyLog, raw); err != nil {
		s.persistErr = &PersistenceError{Op: "save", Key: store.KeyLog, Err: err}
		return s.persistErr
	}
	s.persistErr = nil
	return nil
}
