// Package remove provides the runner that deletes a single entry.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/printers"
)

// Remove deletes the entry logged at Timestamp.
type Remove struct {
	Store     *app.LogStore
	Timestamp string
	Out       io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no log store")
	}

	found, err := n.Store.Delete(n.Timestamp)
	if err != nil && !app.IsPersistence(err) {
		return err
	}
	if !found {
		return fmt.Errorf("no entry logged at %q", n.Timestamp)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message("Deleted %s, %d entries left.", n.Timestamp, n.Store.Len())
	return err
}
