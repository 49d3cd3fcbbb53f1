// Package goal provides the runner for the weekly mood goal.
package goal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/printers"
	"tableflip.dev/mindmap/pkg/theme"
)

// Action selects what Goal does.
type Action string

const (
	Show  Action = "show"
	Set   Action = "set"
	Clear Action = "clear"
)

// Goal shows, sets or clears the goal.
type Goal struct {
	Store  *app.LogStore
	Action Action

	Emotion string
	Target  int

	Theme  theme.Theme
	Output printers.Format
	Out    io.Writer
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not manage goal, no log store")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	var saveErr error
	switch n.Action {
	case Set:
		g, err := n.Store.SetGoal(app.Goal{Emotion: n.Emotion, Target: n.Target})
		if err != nil && !app.IsPersistence(err) {
			return err
		}
		saveErr = err
		if n.Output == printers.FormatText {
			pp.Message("Goal set: %s %d times a week.", g.Emotion, g.Target)
		}
	case Clear:
		err := n.Store.ClearGoal()
		if err != nil && !app.IsPersistence(err) {
			return err
		}
		if n.Output == printers.FormatText {
			pp.Message("Goal cleared.")
		}
		return err
	case Show, "":
	default:
		return fmt.Errorf("unknown goal action %q", n.Action)
	}

	progress, ok := n.Store.GoalProgress(n.Store.Now())
	if n.Output != printers.FormatText {
		var v interface{} = map[string]interface{}{}
		if ok {
			v = progress
		}
		if err := printers.Structured(n.Out, n.Output, v); err != nil {
			return err
		}
		return saveErr
	}
	if !ok {
		pp.Message("No goal set. Try: mindmap goal set Happy 3")
		return saveErr
	}
	d := printers.Dashboard{Out: n.Out, Theme: n.Theme}
	d.Goal(progress)
	return saveErr
}
