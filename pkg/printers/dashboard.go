package printers

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/mindmap/pkg/analytics"
	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/theme"
)

// barWidth is the length of the longest bar in a chart.
const barWidth = 30

// Dashboard renders analytics views with Lip Gloss.
type Dashboard struct {
	Out   io.Writer
	Theme theme.Theme
}

// Render writes the summary cards followed by the frequency and distribution
// charts.
func (d *Dashboard) Render(db analytics.Dashboard) {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		d.card("Last 7 days", db.Weekly),
		" ",
		d.card("Last 30 days", db.Monthly.WeeklySummary),
	)
	_, _ = fmt.Fprintln(d.Out, cards)
	_, _ = fmt.Fprintln(d.Out, "")

	_, _ = fmt.Fprintln(d.Out, d.Theme.Card.Title.Render("Emotion frequency"))
	_, _ = fmt.Fprintln(d.Out, d.Frequency(db.Frequency))
	_, _ = fmt.Fprintln(d.Out, "")

	_, _ = fmt.Fprintln(d.Out, d.Theme.Card.Title.Render("Distribution"))
	_, _ = fmt.Fprintln(d.Out, d.Distribution(db.Shares))
}

// Goal writes a one line goal progress banner.
func (d *Dashboard) Goal(p app.GoalProgress) {
	style := d.Theme.Banner.Info
	if p.Reached {
		style = d.Theme.Banner.Success
	}
	line := fmt.Sprintf("Goal: %s %d/%d this week (%.1f%%)", p.Goal.Emotion, p.Count, p.Goal.Target, p.Percent)
	_, _ = fmt.Fprintln(d.Out, style.Render(line))
}

// Report writes a trailing window summary.
func (d *Dashboard) Report(r app.Report) {
	title := fmt.Sprintf("Last %d days", r.Days)
	_, _ = fmt.Fprintln(d.Out, d.card(title, r.Summary.WeeklySummary))
	_, _ = fmt.Fprintln(d.Out, "")
	_, _ = fmt.Fprintln(d.Out, d.Theme.Card.Title.Render("Emotion frequency"))
	_, _ = fmt.Fprintln(d.Out, d.Frequency(r.Frequency))
}

func (d *Dashboard) card(title string, s analytics.WeeklySummary) string {
	t := d.Theme.Card
	row := func(label, value string) string {
		return t.Label.Render(fmt.Sprintf("%-14s", label)) + t.Value.Render(value)
	}
	body := strings.Join([]string{
		t.Title.Render(title),
		row("Total logs", fmt.Sprintf("%d", s.TotalLogs)),
		row("Avg intensity", fmt.Sprintf("%.1f", s.AverageIntensity)),
		row("Most frequent", s.MostFrequentEmotion),
	}, "\n")
	return t.Frame.Render(body)
}

// Frequency draws one bar per emotion, scaled to the highest count.
func (d *Dashboard) Frequency(counts []analytics.LabelCount) string {
	c := d.Theme.Chart
	if len(counts) == 0 {
		return c.Empty.Render("no entries")
	}
	max := 0
	for _, lc := range counts {
		if lc.Count > max {
			max = lc.Count
		}
	}
	lines := make([]string, 0, len(counts))
	for _, lc := range counts {
		lines = append(lines, c.Label.Render(lc.Emotion)+c.Bar.Render(bar(lc.Count, max))+" "+c.Count.Render(fmt.Sprintf("%d", lc.Count)))
	}
	return strings.Join(lines, "\n")
}

// Distribution draws each emotion's share of the log as a percentage bar.
func (d *Dashboard) Distribution(shares []analytics.Share) string {
	c := d.Theme.Chart
	if len(shares) == 0 {
		return c.Empty.Render("no entries")
	}
	lines := make([]string, 0, len(shares))
	for _, s := range shares {
		pct := int(math.Round(s.Percent))
		lines = append(lines, c.Label.Render(s.Emotion)+c.Bar.Render(bar(pct, 100))+" "+c.Count.Render(fmt.Sprintf("%.1f%%", s.Percent)))
	}
	return strings.Join(lines, "\n")
}

func bar(v, max int) string {
	if max <= 0 || v <= 0 {
		return ""
	}
	n := int(math.Round(float64(v) * barWidth / float64(max)))
	if n == 0 {
		n = 1
	}
	return strings.Repeat("▇", n)
}
