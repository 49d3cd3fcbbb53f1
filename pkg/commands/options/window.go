package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/filter"
)

// WindowOptions
type WindowOptions struct {
	Window string
}

// AddWindowArgs registers --window with the given default; empty means no
// window.
func AddWindowArgs(cmd *cobra.Command, o *WindowOptions, def string) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", def,
		`Trailing window, example: 7d, 2w, 1m or 30.`)
}

// Days returns the window length; zero when no window was asked for.
func (o *WindowOptions) Days() (int, error) {
	if o.Window == "" {
		return 0, nil
	}
	return filter.ParseWindow(o.Window)
}
