package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/commands/options"
	"tableflip.dev/mindmap/pkg/runner/summary"
	"tableflip.dev/mindmap/pkg/runner/timeline"
	"tableflip.dev/mindmap/pkg/runner/watch"
	"tableflip.dev/mindmap/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var limit int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the timeline and summary on screen, redrawing when the log changes",
		Example: `
mindmap watch
mindmap watch -w 2w --limit 20
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			days, err := wo.Days()
			if err != nil {
				return err
			}
			s, err := openSession()
			if err != nil {
				return err
			}
			watcher, ok := s.persistence.(store.Watcher)
			if !ok {
				return errors.New("the configured store does not report changes; watch needs a file backed store")
			}

			out := cmd.OutOrStdout()
			tl := timeline.Timeline{
				Store:    s.log,
				Days:     days,
				Limit:    limit,
				Location: s.config.Location(),
				Out:      out,
				Palette:  paletteFor(out),
			}
			sum := summary.Summary{
				Store:    s.log,
				Location: s.config.Location(),
				Theme:    styleFor(out),
				Out:      out,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{
				Store:       s.log,
				Watcher:     watcher,
				ClearScreen: isTerminal(out),
				Out:         out,
				Render: func(ctx context.Context) error {
					if err := sum.Do(ctx); err != nil {
						return err
					}
					return tl.Do(ctx)
				},
			}
			return w.Do(ctx)
		},
	}

	options.AddWindowArgs(cmd, wo, "1w")
	cmd.Flags().IntVar(&limit, "limit", 15, "Show at most this many entries.")

	topLevel.AddCommand(cmd)
}
