// Package analytics derives summaries and chart series from an emotion log.
// Nothing here mutates the entries it is given, and nothing depends on the
// order of the input beyond first-encounter tie breaking.
package analytics

import (
	"math"
	"sort"
	"time"

	"tableflip.dev/mindmap/pkg/entry"
)

// NoEmotion is reported as the most frequent emotion of an empty log.
const NoEmotion = "None"

// WeeklySummary aggregates a set of entries.
type WeeklySummary struct {
	TotalLogs           int            `json:"totalLogs" yaml:"totalLogs"`
	AverageIntensity    float64        `json:"averageIntensity" yaml:"averageIntensity"`
	MostFrequentEmotion string         `json:"mostFrequentEmotion" yaml:"mostFrequentEmotion"`
	EmotionCounts       map[string]int `json:"emotionCounts" yaml:"emotionCounts"`
}

// DayBucket groups the entries of one calendar day. Week holds the day key
// (yyyy-MM-dd); the name is kept from the monthly breakdown it feeds.
type DayBucket struct {
	Week         string  `json:"week" yaml:"week"`
	Count        int     `json:"count" yaml:"count"`
	AvgIntensity float64 `json:"avgIntensity" yaml:"avgIntensity"`
}

// MonthlySummary extends WeeklySummary with a per-day breakdown.
type MonthlySummary struct {
	WeeklySummary   `yaml:",inline"`
	WeeklyBreakdown []DayBucket `json:"weeklyBreakdown" yaml:"weeklyBreakdown"`
}

// Aggregator computes summaries with calendar days taken in Location.
type Aggregator struct {
	Location *time.Location
}

// New returns an Aggregator for loc; nil means the local zone.
func New(loc *time.Location) *Aggregator {
	return &Aggregator{Location: loc}
}

// Weekly summarizes entries in the local zone.
func Weekly(entries []entry.Entry) WeeklySummary {
	return New(nil).Weekly(entries)
}

// Monthly summarizes entries in the local zone.
func Monthly(entries []entry.Entry) MonthlySummary {
	return New(nil).Monthly(entries)
}

// Weekly counts entries per emotion and averages their intensity. An empty
// input yields the zero summary with NoEmotion as the most frequent emotion.
func (a *Aggregator) Weekly(entries []entry.Entry) WeeklySummary {
	if len(entries) == 0 {
		return WeeklySummary{
			MostFrequentEmotion: NoEmotion,
			EmotionCounts:       map[string]int{},
		}
	}

	counts, order := countEmotions(entries)
	total := 0
	for _, e := range entries {
		total += e.Intensity
	}

	return WeeklySummary{
		TotalLogs:           len(entries),
		AverageIntensity:    round1(float64(total) / float64(len(entries))),
		MostFrequentEmotion: mostFrequent(counts, order),
		EmotionCounts:       counts,
	}
}

// Monthly returns the weekly summary of entries plus one bucket per calendar
// day present, sorted by day.
func (a *Aggregator) Monthly(entries []entry.Entry) MonthlySummary {
	type acc struct {
		count int
		sum   int
	}
	days := make(map[string]*acc)
	for _, e := range entries {
		day, ok := e.Day(a.location())
		if !ok {
			continue
		}
		b, found := days[day]
		if !found {
			b = &acc{}
			days[day] = b
		}
		b.count++
		b.sum += e.Intensity
	}

	breakdown := make([]DayBucket, 0, len(days))
	for day, b := range days {
		breakdown = append(breakdown, DayBucket{
			Week:         day,
			Count:        b.count,
			AvgIntensity: round1(float64(b.sum) / float64(b.count)),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Week < breakdown[j].Week
	})

	return MonthlySummary{
		WeeklySummary:   a.Weekly(entries),
		WeeklyBreakdown: breakdown,
	}
}

func (a *Aggregator) location() *time.Location {
	if a == nil || a.Location == nil {
		return time.Local
	}
	return a.Location
}

// countEmotions counts labels in one forward scan and remembers the order in
// which each label was first seen.
func countEmotions(entries []entry.Entry) (map[string]int, []string) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		if _, ok := counts[e.Emotion]; !ok {
			order = append(order, e.Emotion)
		}
		counts[e.Emotion]++
	}
	return counts, order
}

// mostFrequent is an argmax over order; ties go to the label seen first.
func mostFrequent(counts map[string]int, order []string) string {
	best := NoEmotion
	bestCount := 0
	for _, label := range order {
		if c := counts[label]; c > bestCount {
			best = label
			bestCount = c
		}
	}
	return best
}

// round1 rounds half up to one decimal place.
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
