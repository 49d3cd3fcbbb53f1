// Package mcp provides the Model Context Protocol server integration for mindmap.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/mindmap/pkg/analytics"
	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/filter"
	"tableflip.dev/mindmap/pkg/wheel"
)

// Service coordinates log store operations that are shared by the MCP server.
type Service struct {
	Store *app.LogStore
}

// ErrEntryNotFound is returned when no entry carries the requested timestamp.
var ErrEntryNotFound = errors.New("entry not found")

// LogEmotionOptions captures the parameters used to log a new emotion.
type LogEmotionOptions struct {
	Emotion   string
	Intensity int
	Context   string
	Journal   string
	Timestamp string
}

// ListOptions narrows list_entries.
type ListOptions struct {
	// Days keeps the trailing window; zero lists everything.
	Days  int
	Limit int
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	Timestamp   string `json:"timestamp"`
	Emotion     string `json:"emotion"`
	Intensity   int    `json:"intensity"`
	Context     string `json:"context,omitempty"`
	Journal     string `json:"journal,omitempty"`
	Sector      string `json:"sector,omitempty"`
	SectorColor string `json:"sectorColor,omitempty"`
	CreatedUnix int64  `json:"createdUnix,omitempty"`
}

// ImportDTO reports the result of an import.
type ImportDTO struct {
	Parsed     int    `json:"parsed"`
	Merged     int    `json:"merged"`
	Duplicates int    `json:"duplicates"`
	Message    string `json:"message"`
}

// ExportDTO carries an export and the file name it would be saved under.
type ExportDTO struct {
	FileName string `json:"fileName"`
	Format   string `json:"format"`
	Content  string `json:"content"`
}

// GoalDTO describes the goal and its progress, if one is set.
type GoalDTO struct {
	Set      bool              `json:"set"`
	Progress *app.GoalProgress `json:"progress,omitempty"`
}

// NewService builds a service wrapper around the log store.
func NewService(s *app.LogStore) *Service {
	return &Service{Store: s}
}

func (s *Service) ready(ctx context.Context) error {
	if s.Store == nil {
		return errors.New("log store is not configured")
	}
	return ctx.Err()
}

// LogEmotion validates and records a new entry. A persistence failure still
// returns the recorded entry together with the error.
func (s *Service) LogEmotion(ctx context.Context, opts LogEmotionOptions) (*EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	e, err := s.Store.Create(entry.Candidate{
		Emotion:   opts.Emotion,
		Intensity: opts.Intensity,
		Context:   opts.Context,
		Journal:   opts.Journal,
		Timestamp: opts.Timestamp,
	})
	if err != nil && !app.IsPersistence(err) {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, err
}

// DeleteEntry removes the entry with the given timestamp.
func (s *Service) DeleteEntry(ctx context.Context, timestamp string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	found, err := s.Store.Delete(timestamp)
	if !found && err == nil {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, timestamp)
	}
	return err
}

// ListEntries returns entries newest first.
func (s *Service) ListEntries(ctx context.Context, opts ListOptions) ([]EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	entries := s.Store.Entries()
	if opts.Days > 0 {
		entries = filter.TrailingWindow(entries, opts.Days, s.Store.Now())
	}
	return toDTOs(limit(entries, opts.Limit)), nil
}

// SearchEntries matches query against emotions, or fuzzily against emotion,
// context and journal.
func (s *Service) SearchEntries(ctx context.Context, query string, max int, fuzzy bool) ([]EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	var found []entry.Entry
	if fuzzy {
		found = filter.Fuzzy(s.Store.Entries(), query)
	} else {
		found = s.Store.Search(query)
	}
	return toDTOs(limit(found, max)), nil
}

// EntryByTimestamp fetches a single entry.
func (s *Service) EntryByTimestamp(ctx context.Context, timestamp string) (*EntryDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	for _, e := range s.Store.Entries() {
		if e.Timestamp == timestamp {
			dto := toDTO(e)
			return &dto, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, timestamp)
}

// WeeklySummary summarizes the last seven days.
func (s *Service) WeeklySummary(ctx context.Context) (analytics.WeeklySummary, error) {
	if err := s.ready(ctx); err != nil {
		return analytics.WeeklySummary{}, err
	}
	return s.Store.WeeklySummary(), nil
}

// MonthlySummary summarizes the last thirty days.
func (s *Service) MonthlySummary(ctx context.Context) (analytics.MonthlySummary, error) {
	if err := s.ready(ctx); err != nil {
		return analytics.MonthlySummary{}, err
	}
	return s.Store.MonthlySummary(), nil
}

// Export renders the log as json or csv.
func (s *Service) Export(ctx context.Context, format string) (*ExportDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	f, err := app.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	content, err := s.Store.Export(f)
	if err != nil {
		return nil, err
	}
	return &ExportDTO{FileName: s.Store.ExportFileName(f), Format: string(f), Content: content}, nil
}

// ImportCSV merges CSV text into the log.
func (s *Service) ImportCSV(ctx context.Context, text string) (*ImportDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	out, err := s.Store.ImportCSV(text)
	if err != nil && !app.IsPersistence(err) {
		return nil, err
	}
	return &ImportDTO{
		Parsed:     out.Parsed,
		Merged:     out.Merged,
		Duplicates: out.Duplicates(),
		Message:    out.Message(),
	}, err
}

// Goal returns the goal and its progress over the last seven days.
func (s *Service) Goal(ctx context.Context) (*GoalDTO, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	p, ok := s.Store.GoalProgress(s.Store.Now())
	if !ok {
		return &GoalDTO{}, nil
	}
	return &GoalDTO{Set: true, Progress: &p}, nil
}

func limit(entries []entry.Entry, n int) []entry.Entry {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}

func toDTOs(entries []entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e entry.Entry) EntryDTO {
	dto := EntryDTO{
		Timestamp: e.Timestamp,
		Emotion:   e.Emotion,
		Intensity: e.Intensity,
		Context:   e.Context,
		Journal:   e.Journal,
	}
	if sector, ok := wheel.Lookup(e.Emotion); ok {
		dto.Sector = sector.Name
		dto.SectorColor = sector.Color
	}
	if t, err := e.Time(); err == nil {
		dto.CreatedUnix = t.Unix()
	}
	return dto
}
