// Package filter selects subsets of an emotion log: trailing time windows
// and emotion searches.
package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/mindmap/pkg/entry"
)

const (
	// Week is the trailing window used for the weekly summary.
	Week = 7
	// Month is the trailing window used for the monthly summary.
	Month = 30
	// MaxWindow caps ParseWindow at a hundred years.
	MaxWindow = 100 * 365
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitDays      = map[string]int{
		"":       1,
		"d":      1,
		"day":    1,
		"days":   1,
		"w":      7,
		"wk":     7,
		"wks":    7,
		"week":   7,
		"weeks":  7,
		"m":      Month,
		"mo":     Month,
		"month":  Month,
		"months": Month,
	}
)

// SelectWithinTrailingWindow keeps entries from the last days days, measured
// from the current wall clock.
func SelectWithinTrailingWindow(entries []entry.Entry, days int) []entry.Entry {
	return TrailingWindow(entries, days, time.Now())
}

// TrailingWindow keeps entries whose timestamp is at or after now minus days
// days. Entries with unreadable timestamps are excluded. Order is preserved.
func TrailingWindow(entries []entry.Entry, days int, now time.Time) []entry.Entry {
	cutoff := now.AddDate(0, 0, -days)
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		t, err := e.Time()
		if err != nil {
			continue
		}
		if !t.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// ParseWindow turns a window such as "7", "1w", "2w3d" or "1m" into days.
// An empty input means one week.
func ParseWindow(input string) (int, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return Week, nil
	}

	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		days, ok := unitDays[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		if value > MaxWindow/days {
			return 0, fmt.Errorf("window %q is longer than %d days", input, MaxWindow)
		}
		total += value * days
		if total > MaxWindow {
			return 0, fmt.Errorf("window %q is longer than %d days", input, MaxWindow)
		}
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}

// FormatWindow renders days using week and day tokens.
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}
	var parts []string
	if w := days / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := days % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	return strings.Join(parts, "")
}
