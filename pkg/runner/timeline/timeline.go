// Package timeline provides the runner that lists the log.
package timeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/filter"
	"tableflip.dev/mindmap/pkg/printers"
	"tableflip.dev/mindmap/pkg/wheel"
)

// Timeline prints entries newest first.
type Timeline struct {
	Store *app.LogStore

	// Days keeps only the trailing window; zero shows everything.
	Days int
	// Query filters on emotion, or on all text when Fuzzy is set.
	Query string
	Fuzzy bool
	Limit int

	ShowStamp bool
	Location  *time.Location
	Output    printers.Format
	Out       io.Writer
	Palette   *wheel.Palette
}

// Do prints the selected entries.
func (n *Timeline) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no log store")
	}

	all := n.Select()
	if n.Output != printers.FormatText {
		return printers.Structured(n.Out, n.Output, all)
	}

	pp := printers.PrettyPrint{
		Out:       n.Out,
		Location:  n.Location,
		Now:       n.Store.Now(),
		ShowStamp: n.ShowStamp,
		Palette:   n.Palette,
	}
	title := "Emotion log"
	if n.Days > 0 {
		title = fmt.Sprintf("Last %s", filter.FormatWindow(n.Days))
	}
	pp.TitleWithCount(title, len(all))
	pp.Timeline(all...)
	return nil
}

// Select applies the window, query and limit.
func (n *Timeline) Select() []entry.Entry {
	all := n.Store.Entries()
	if n.Days > 0 {
		all = filter.TrailingWindow(all, n.Days, n.Store.Now())
	}
	switch {
	case n.Query == "":
	case n.Fuzzy:
		all = filter.Fuzzy(all, n.Query)
	default:
		all = filter.ByEmotion(all, n.Query)
	}
	if n.Limit > 0 && len(all) > n.Limit {
		all = all[:n.Limit]
	}
	return all
}
