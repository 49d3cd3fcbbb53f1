// Package log provides the runner that records a new emotion.
package log

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/printers"
	"tableflip.dev/mindmap/pkg/wheel"
)

// Asker collects the fields the command line left out.
type Asker interface {
	Intensity(def int) (int, error)
	Text(label string) (string, error)
}

// Log records one entry.
type Log struct {
	Store *app.LogStore

	Emotion   string
	Intensity int
	// IntensitySet marks Intensity as given even when it is zero, so an
	// explicit 0 is rejected instead of replaced by the default.
	IntensitySet bool
	Context      string
	Journal      string
	Timestamp    string

	// Picker chooses the emotion when none was given.
	Picker wheel.Picker
	// Asker, when set, prompts for intensity, context and journal.
	Asker Asker

	Output  printers.Format
	Out     io.Writer
	Palette *wheel.Palette
}

// Do fills in missing fields, records the entry and prints it.
func (n *Log) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not log, no log store")
	}

	if strings.TrimSpace(n.Emotion) == "" {
		if n.Picker == nil {
			return errors.New("an emotion is required")
		}
		picked, err := n.Picker.Pick(ctx)
		if err != nil {
			return err
		}
		n.Emotion = picked
	}

	if n.Intensity != 0 {
		n.IntensitySet = true
	}
	if n.Asker != nil {
		if err := n.ask(); err != nil {
			return err
		}
	}
	if !n.IntensitySet {
		n.Intensity = entry.DefaultIntensity
	}

	e, err := n.Store.Create(entry.Candidate{
		Emotion:   wheel.Canonical(n.Emotion),
		Intensity: n.Intensity,
		Context:   n.Context,
		Journal:   n.Journal,
		Timestamp: n.Timestamp,
	})
	if err != nil && !app.IsPersistence(err) {
		return err
	}

	if n.Output != printers.FormatText {
		if perr := printers.Structured(n.Out, n.Output, e); perr != nil {
			return perr
		}
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, Palette: n.Palette, Now: n.Store.Now()}
	pp.Entry(e)
	return err
}

func (n *Log) ask() error {
	var err error
	if !n.IntensitySet {
		if n.Intensity, err = n.Asker.Intensity(entry.DefaultIntensity); err != nil {
			return err
		}
		n.IntensitySet = true
	}
	if n.Context == "" {
		if n.Context, err = n.Asker.Text("Context"); err != nil {
			return err
		}
	}
	if n.Journal == "" {
		if n.Journal, err = n.Asker.Text("Journal"); err != nil {
			return err
		}
	}
	return nil
}
