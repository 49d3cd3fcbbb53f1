// Package export provides the runner that writes the log to a file.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/printers"
)

// Stdout as Dir writes the export to Out instead of a file.
const Stdout = "-"

// Export writes mindmap-emotions-<date>.<ext> into Dir.
type Export struct {
	Store  *app.LogStore
	Format app.Format
	Dir    string
	Out    io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no log store")
	}

	content, err := n.Store.Export(n.Format)
	if err != nil {
		return err
	}

	if n.Dir == Stdout {
		_, err := fmt.Fprintln(n.Out, content)
		return err
	}

	dir := n.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(dir, n.Store.ExportFileName(n.Format))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message("Exported %d entries to %s", n.Store.Len(), path)
	return nil
}
