package commands

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/printers"
	"tableflip.dev/mindmap/pkg/store"
	"tableflip.dev/mindmap/pkg/theme"
	"tableflip.dev/mindmap/pkg/wheel"
)

// session is what every command needs: the config, the raw store and the
// log store on top of it.
type session struct {
	config      store.Config
	persistence store.Persistence
	log         *app.LogStore
}

// openSession loads config and the log. An unreadable store is not fatal:
// the log opens empty and the standing error is printed to stderr.
func openSession() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	l, err := app.Open(p, app.WithLocation(cfg.Location()))
	if err != nil {
		return nil, err
	}
	if perr := l.PersistenceErr(); perr != nil {
		warn(perr)
	}
	return &session{config: cfg, persistence: p, log: l}, nil
}

func warn(err error) {
	pp := printers.PrettyPrint{Out: os.Stderr}
	pp.Warning("%v", err)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// styleFor picks the dashboard theme for w.
func styleFor(w io.Writer) theme.Theme {
	if isTerminal(w) {
		return theme.Default()
	}
	return theme.Plain()
}

// paletteFor colours emotions only on terminals.
func paletteFor(w io.Writer) *wheel.Palette {
	if isTerminal(w) {
		return wheel.NewPalette(w)
	}
	return wheel.NewPalette(w, termenv.WithProfile(termenv.Ascii))
}
