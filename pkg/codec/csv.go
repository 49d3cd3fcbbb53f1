package codec

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/mindmap/pkg/entry"
)

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// CSV holds the knobs that make CSV conversion reproducible: the column
// resolution strategy, the zone used for the Date/Time projections and the
// clock used when a row carries no time at all.
type CSV struct {
	Columns  Columns
	Location *time.Location
	Now      func() time.Time
}

// Default returns a CSV codec using DefaultColumns, the local zone and the
// wall clock.
func Default() *CSV {
	return &CSV{
		Columns:  DefaultColumns(),
		Location: time.Local,
		Now:      time.Now,
	}
}

// SerializeCSV renders entries with the default codec.
func SerializeCSV(entries []entry.Entry) string {
	return Default().Serialize(entries)
}

// ParseCSV parses text with the default codec.
func ParseCSV(text string) []entry.Entry {
	return Default().Parse(text)
}

// Serialize renders the header row followed by one row per entry, in the
// order given. Emotion, context and journal are always quoted; Date and Time
// are derived from Timestamp, which stays authoritative.
func (c *CSV) Serialize(entries []entry.Entry) string {
	loc := c.location()
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))
	for _, e := range entries {
		var date, clock string
		if t, err := e.Time(); err == nil {
			local := t.In(loc)
			date = local.Format(entry.LayoutDay)
			clock = local.Format(entry.LayoutClock)
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			quote(e.Emotion),
			strconv.Itoa(e.Intensity),
			quote(e.Context),
			quote(e.Journal),
			date,
			clock,
			e.Timestamp,
		}, ","))
	}
	return b.String()
}

// Parse reads rows using the header to locate columns. It never fails: rows
// that do not yield a valid entry are dropped, and so are rows repeating a
// timestamp produced earlier in the same input. Empty or header-only input
// yields an empty slice.
func (c *CSV) Parse(text string) []entry.Entry {
	out := []entry.Entry{}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return out
	}
	cols := c.columns().Resolve(header)

	seen := make(map[string]struct{})
	stamp := &fallbackClock{now: c.now}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			break
		}

		e, ok := c.row(record, cols, stamp)
		if !ok {
			continue
		}
		if _, dup := seen[e.Timestamp]; dup {
			continue
		}
		seen[e.Timestamp] = struct{}{}
		out = append(out, e)
	}
	return out
}

func (c *CSV) row(record []string, cols map[Field]int, stamp *fallbackClock) (entry.Entry, bool) {
	get := func(f Field) string {
		idx, ok := cols[f]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	ts, ok := c.timestamp(get, cols, stamp)
	if !ok {
		return entry.Entry{}, false
	}

	e, err := entry.Validate(entry.Candidate{
		Emotion:   get(FieldEmotion),
		Intensity: parseIntensity(get(FieldIntensity)),
		Context:   get(FieldContext),
		Journal:   get(FieldJournal),
		Timestamp: ts,
	})
	if err != nil {
		return entry.Entry{}, false
	}
	return e, true
}

// timestamp resolves the row instant: the Timestamp column verbatim, else
// Date and Time combined in the codec zone, else the current instant.
func (c *CSV) timestamp(get func(Field) string, cols map[Field]int, stamp *fallbackClock) (string, bool) {
	if ts := get(FieldTimestamp); ts != "" {
		return ts, true
	}
	_, hasDate := cols[FieldDate]
	_, hasTime := cols[FieldTime]
	if hasDate && hasTime {
		combined := get(FieldDate) + "T" + get(FieldTime)
		for _, layout := range dateTimeLayouts {
			if t, err := time.ParseInLocation(layout, combined, c.location()); err == nil {
				return entry.FormatTimestamp(t), true
			}
		}
		return "", false
	}
	return entry.FormatTimestamp(stamp.next()), true
}

// fallbackClock hands out the current instant for rows without any time
// columns, advancing by a millisecond per row so each row keeps its own key.
type fallbackClock struct {
	now  func() time.Time
	last time.Time
}

func (f *fallbackClock) next() time.Time {
	t := f.now().Truncate(time.Millisecond)
	if !f.last.IsZero() && !t.After(f.last) {
		t = f.last.Add(time.Millisecond)
	}
	f.last = t
	return t
}

// parseIntensity reads the leading integer of v, ignoring anything after it.
// Values without leading digits fall back to entry.DefaultIntensity.
func parseIntensity(v string) int {
	end := 0
	if end < len(v) && (v[end] == '-' || v[end] == '+') {
		end++
	}
	digits := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == digits {
		return entry.DefaultIntensity
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil {
		return entry.DefaultIntensity
	}
	return n
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func (c *CSV) columns() Columns {
	if c.Columns == nil {
		return DefaultColumns()
	}
	return c.Columns
}

func (c *CSV) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c *CSV) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
