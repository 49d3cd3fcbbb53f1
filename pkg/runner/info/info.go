// Package info provides the runner that reports configuration and store
// health.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/store"
)

var (
	label   = color.New(color.Bold).SprintFunc()
	problem = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Info prints where the log lives and how much it holds.
type Info struct {
	Config store.Config
	Store  *app.LogStore
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		fmt.Fprintln(out, label(store.ConfigPathEnv), "found on env, using", override)
	} else {
		fmt.Fprintln(out, label(store.ConfigPathEnv), "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, label("Config.path:"), n.Config.BasePath())
	fmt.Fprintln(out, label("Config.timezone:"), n.Config.Location())

	if n.Store == nil {
		return fmt.Errorf("failed to open the log store")
	}

	fmt.Fprintln(out, label("Entries:"), n.Store.Len())
	if g, ok := n.Store.Goal(); ok {
		fmt.Fprintf(out, "%s %s x%d per week\n", label("Goal:"), g.Emotion, g.Target)
	} else {
		fmt.Fprintln(out, label("Goal:"), "none")
	}
	if err := n.Store.PersistenceErr(); err != nil {
		fmt.Fprintln(out, problem("Store error:"), err)
	}
	return nil
}
