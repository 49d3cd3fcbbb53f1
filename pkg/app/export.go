package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tableflip.dev/mindmap/pkg/codec"
)

// Format is an import/export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

const exportPrefix = "mindmap-emotions-"

// ParseFormat accepts "json" or "csv" in any case.
func ParseFormat(v string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(v))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("app: unsupported format %q (expected json or csv)", v)
	}
}

// FormatForFile infers the format from a file extension.
func FormatForFile(name string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(name), "."))
}

// ExportFileName names an export made on the day of now,
// mindmap-emotions-<yyyy-MM-dd>.<ext>.
func ExportFileName(f Format, now time.Time) string {
	return exportPrefix + now.Format("2006-01-02") + "." + string(f)
}

// ExportJSON renders the log as the pretty-printed JSON array.
func (s *LogStore) ExportJSON() (string, error) {
	return codec.SerializeJSON(s.Entries())
}

// ExportCSV renders the log as CSV with the fixed header.
func (s *LogStore) ExportCSV() string {
	return s.csv.Serialize(s.Entries())
}

// Export renders the log in the given format.
func (s *LogStore) Export(f Format) (string, error) {
	switch f {
	case FormatJSON:
		return s.ExportJSON()
	case FormatCSV:
		return s.ExportCSV(), nil
	default:
		return "", fmt.Errorf("app: unsupported export format %q", f)
	}
}

// ExportFileName names an export of this store made now, in the store zone.
func (s *LogStore) ExportFileName(f Format) string {
	loc := s.csv.Location
	if loc == nil {
		loc = time.Local
	}
	return ExportFileName(f, s.now().In(loc))
}
