package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/entry"
)

const (
	layoutISO      = "2006-1-2 15:04"
	layoutISOShort = "15:04"
)

// LogOptions
type LogOptions struct {
	Intensity int
	Context   string
	Journal   string
	At        string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().IntVarP(&o.Intensity, "intensity", "n", 0,
		fmt.Sprintf("Intensity from %d to %d (default %d).", entry.MinIntensity, entry.MaxIntensity, entry.DefaultIntensity))
	cmd.Flags().StringVarP(&o.Context, "context", "c", "",
		"What was happening.")
	cmd.Flags().StringVarP(&o.Journal, "journal", "j", "",
		"Free-form journal text.")
	cmd.Flags().StringVar(&o.At, "at", "",
		`Backdate the entry, example: --at="2025-1-14 18:30", --at="18:30" or an ISO-8601 instant.`)
}

// Timestamp resolves --at to an entry timestamp. Empty means now and is
// returned empty so the store can stamp it.
func (o *LogOptions) Timestamp(now time.Time, loc *time.Location) (string, error) {
	at := strings.TrimSpace(o.At)
	if at == "" {
		return "", nil
	}
	if t, err := entry.ParseTime(at); err == nil {
		return entry.FormatTimestamp(t), nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(layoutISO, at, loc)
	if err != nil {
		// Same day as now.
		clock, cerr := time.ParseInLocation(layoutISOShort, at, loc)
		if cerr != nil {
			return "", fmt.Errorf("invalid --at %q: %w", o.At, err)
		}
		local := now.In(loc)
		t = time.Date(local.Year(), local.Month(), local.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
	}
	return entry.FormatTimestamp(t), nil
}
