package app

import (
	"time"

	"tableflip.dev/mindmap/pkg/analytics"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/filter"
)

// Report captures the entries of a trailing window and their summary.
type Report struct {
	Days      int                      `json:"days"`
	Since     time.Time                `json:"since"`
	Until     time.Time                `json:"until"`
	Entries   []entry.Entry            `json:"entries"`
	Summary   analytics.MonthlySummary `json:"summary"`
	Frequency []analytics.LabelCount   `json:"frequency"`
}

// Report summarizes the last days days. A non-positive window defaults to a
// week.
func (s *LogStore) Report(days int) Report {
	if days <= 0 {
		days = filter.Week
	}
	now := s.now()
	in := filter.TrailingWindow(s.Entries(), days, now)
	return Report{
		Days:      days,
		Since:     now.AddDate(0, 0, -days),
		Until:     now,
		Entries:   in,
		Summary:   s.agg.Monthly(in),
		Frequency: s.agg.Frequency(in, analytics.DefaultFrequencyLimit),
	}
}
