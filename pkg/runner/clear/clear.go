// Package clear provides the runner that empties the log.
package clear

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/printers"
)

// Clear removes every entry after confirmation.
type Clear struct {
	Store *app.LogStore
	// Yes skips Confirm.
	Yes     bool
	Confirm func(label string) (bool, error)
	Out     io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear, no log store")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	count := n.Store.Len()
	if count == 0 {
		pp.Message("The log is already empty.")
		return nil
	}

	if !n.Yes {
		if n.Confirm == nil {
			return errors.New("refusing to clear without confirmation, pass --yes")
		}
		ok, err := n.Confirm("Delete all entries")
		if err != nil {
			return err
		}
		if !ok {
			pp.Message("Nothing deleted.")
			return nil
		}
	}

	err := n.Store.Clear()
	if err != nil && !app.IsPersistence(err) {
		return err
	}
	pp.Message("Deleted %d entries.", count)
	return err
}
