// Package summary provides the runner for the analytics dashboard.
package summary

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/mindmap/pkg/analytics"
	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/printers"
	"tableflip.dev/mindmap/pkg/theme"
)

// Summary prints the dashboard, or a single trailing window when Days is
// set.
type Summary struct {
	Store *app.LogStore

	Days     int
	Calendar bool
	Location *time.Location

	Theme  theme.Theme
	Output printers.Format
	Out    io.Writer
}

func (n *Summary) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not summarize, no log store")
	}
	d := printers.Dashboard{Out: n.Out, Theme: n.Theme}

	if n.Days > 0 {
		r := n.Store.Report(n.Days)
		if n.Output != printers.FormatText {
			return printers.Structured(n.Out, n.Output, r)
		}
		d.Report(r)
		return nil
	}

	db := n.Store.Dashboard()
	progress, hasGoal := n.Store.GoalProgress(n.Store.Now())
	if n.Output != printers.FormatText {
		out := struct {
			analytics.Dashboard `yaml:",inline"`
			Goal                *app.GoalProgress `json:"goal,omitempty" yaml:"goal,omitempty"`
		}{Dashboard: db}
		if hasGoal {
			out.Goal = &progress
		}
		return printers.Structured(n.Out, n.Output, out)
	}

	d.Render(db)
	if hasGoal {
		d.Goal(progress)
	}
	if n.Calendar {
		now := n.Store.Now()
		if n.Location != nil {
			now = now.In(n.Location)
		}
		pp := printers.PrettyPrint{Out: n.Out}
		pp.NewLine()
		pp.Calendar(now, db.Monthly.WeeklyBreakdown)
	}
	return nil
}
