// Package watch provides the runner that redraws a view whenever the store
// changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/printers"
	"tableflip.dev/mindmap/pkg/store"
)

// Watch reloads the log on every store event and calls Render.
type Watch struct {
	Store   *app.LogStore
	Watcher store.Watcher
	Render  func(ctx context.Context) error
	// ClearScreen wipes the terminal before each redraw.
	ClearScreen bool
	Out         io.Writer
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not watch, no log store")
	}
	if n.Watcher == nil {
		return errors.New("can not watch, the store does not report changes")
	}
	if n.Render == nil {
		return errors.New("can not watch, nothing to render")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch, err := n.Watcher.Watch(ctx)
	if err != nil {
		return err
	}
	if err := n.redraw(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if err := n.Store.Reload(); err != nil {
				pp := printers.PrettyPrint{Out: n.Out}
				pp.Warning("reload after %s changed: %v", ev.Key, err)
				continue
			}
			if err := n.redraw(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *Watch) redraw(ctx context.Context) error {
	if n.ClearScreen {
		out := termenv.NewOutput(n.Out)
		out.ClearScreen()
		out.MoveCursor(1, 1)
	}
	if err := n.Render(ctx); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
