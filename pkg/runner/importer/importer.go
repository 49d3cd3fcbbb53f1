// Package importer provides the runner that merges a file into the log.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/printers"
)

// Stdin as Path reads the import from In.
const Stdin = "-"

// Import reads Path and merges it. Format is inferred from the extension
// when empty.
type Import struct {
	Store  *app.LogStore
	Path   string
	Format app.Format
	In     io.Reader

	Output printers.Format
	Out    io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not import, no log store")
	}

	format := n.Format
	if format == "" {
		if n.Path == Stdin {
			format = app.FormatCSV
		} else {
			f, err := app.FormatForFile(n.Path)
			if err != nil {
				return err
			}
			format = f
		}
	}

	text, err := n.read()
	if err != nil {
		return err
	}

	outcome, err := n.Store.Import(format, text)
	if err != nil && !app.IsPersistence(err) {
		return err
	}

	if n.Output != printers.FormatText {
		if perr := printers.Structured(n.Out, n.Output, struct {
			app.ImportOutcome `yaml:",inline"`
			Message           string `json:"message" yaml:"message"`
		}{outcome, outcome.Message()}); perr != nil {
			return perr
		}
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message("%s", outcome.Message())
	return err
}

func (n *Import) read() (string, error) {
	if n.Path == Stdin {
		if n.In == nil {
			return "", errors.New("import: no input")
		}
		b, err := io.ReadAll(n.In)
		if err != nil {
			return "", fmt.Errorf("import: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(n.Path)
	if err != nil {
		return "", fmt.Errorf("import: %w", err)
	}
	return string(b), nil
}
