package analytics

import (
	"sort"
	"time"

	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/filter"
)

// DefaultFrequencyLimit caps the emotion frequency chart.
const DefaultFrequencyLimit = 10

// LabelCount is one bar of the emotion frequency chart.
type LabelCount struct {
	Emotion string `json:"emotion" yaml:"emotion"`
	Count   int    `json:"count" yaml:"count"`
}

// TrendPoint is one point of the intensity trend chart.
type TrendPoint struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Date      string `json:"date" yaml:"date"`
	Intensity int    `json:"intensity" yaml:"intensity"`
	Emotion   string `json:"emotion" yaml:"emotion"`
}

// Share is one slice of the emotion distribution chart.
type Share struct {
	Emotion string  `json:"emotion" yaml:"emotion"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Dashboard bundles everything the analytics view shows: the last week and
// the last month summarized, plus the chart series over the last week.
type Dashboard struct {
	GeneratedAt string         `json:"generatedAt" yaml:"generatedAt"`
	Weekly      WeeklySummary  `json:"weekly" yaml:"weekly"`
	Monthly     MonthlySummary `json:"monthly" yaml:"monthly"`
	Frequency   []LabelCount   `json:"frequency" yaml:"frequency"`
	Trend       []TrendPoint   `json:"trend" yaml:"trend"`
	Shares      []Share        `json:"distribution" yaml:"distribution"`
}

// Frequency returns per-emotion counts sorted by count, highest first, with
// ties in first-encounter order. limit <= 0 means no limit.
func (a *Aggregator) Frequency(entries []entry.Entry, limit int) []LabelCount {
	counts, order := countEmotions(entries)
	out := make([]LabelCount, 0, len(order))
	for _, label := range order {
		out = append(out, LabelCount{Emotion: label, Count: counts[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Trend returns one point per entry in chronological order. Entries with
// unreadable timestamps are skipped.
func (a *Aggregator) Trend(entries []entry.Entry) []TrendPoint {
	type timed struct {
		at time.Time
		e  entry.Entry
	}
	sorted := make([]timed, 0, len(entries))
	for _, e := range entries {
		t, err := e.Time()
		if err != nil {
			continue
		}
		sorted = append(sorted, timed{at: t, e: e})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].at.Before(sorted[j].at)
	})

	out := make([]TrendPoint, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, TrendPoint{
			Timestamp: s.e.Timestamp,
			Date:      s.at.In(a.location()).Format(entry.LayoutDay),
			Intensity: s.e.Intensity,
			Emotion:   s.e.Emotion,
		})
	}
	return out
}

// Distribution returns each emotion's share of entries in percent, rounded
// to one decimal, in the same order as Frequency.
func (a *Aggregator) Distribution(entries []entry.Entry) []Share {
	freq := a.Frequency(entries, 0)
	out := make([]Share, 0, len(freq))
	for _, f := range freq {
		out = append(out, Share{
			Emotion: f.Emotion,
			Count:   f.Count,
			Percent: round1(float64(f.Count) * 100 / float64(len(entries))),
		})
	}
	return out
}

// Dashboard composes the analytics view as of now.
func (a *Aggregator) Dashboard(entries []entry.Entry, now time.Time) Dashboard {
	week := filter.TrailingWindow(entries, filter.Week, now)
	month := filter.TrailingWindow(entries, filter.Month, now)
	return Dashboard{
		GeneratedAt: entry.FormatTimestamp(now),
		Weekly:      a.Weekly(week),
		Monthly:     a.Monthly(month),
		Frequency:   a.Frequency(week, DefaultFrequencyLimit),
		Trend:       a.Trend(week),
		Shares:      a.Distribution(week),
	}
}
