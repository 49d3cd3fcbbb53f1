package entry

import (
	"errors"
	"time"
)

const (
	// LayoutDay is the calendar day projection used in exports and buckets.
	LayoutDay = "2006-01-02"
	// LayoutClock is the time-of-day projection used in CSV exports.
	LayoutClock = "15:04:05"
	// LayoutInstant is the millisecond UTC form minted for new entries.
	LayoutInstant = "2006-01-02T15:04:05.000Z"
)

// ParseTime parses an ISO-8601 instant. Fractional seconds are optional.
func ParseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, errors.New("entry: empty timestamp")
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatTimestamp renders t the way new entries are stamped.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(LayoutInstant)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	a, b = a.In(loc), b.In(loc)
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}
