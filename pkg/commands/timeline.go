package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/commands/options"
	"tableflip.dev/mindmap/pkg/runner/timeline"
)

func addTimeline(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	so := &options.StampOptions{}
	var (
		query string
		fuzzy bool
		limit int
	)

	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"list", "ls"},
		Short:   "Show logged emotions, newest first",
		Example: `
mindmap timeline
mindmap timeline -w 2w -q happy
mindmap timeline -q "long walk" --fuzzy -k
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := output.Format()
			if err != nil {
				return err
			}
			days, err := wo.Days()
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return output.HandleError(err)
			}

			out := cmd.OutOrStdout()
			t := timeline.Timeline{
				Store:     s.log,
				Days:      days,
				Query:     query,
				Fuzzy:     fuzzy,
				Limit:     limit,
				ShowStamp: so.ShowStamp,
				Location:  s.config.Location(),
				Output:    format,
				Out:       out,
				Palette:   paletteFor(out),
			}
			err = t.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo, "")
	options.AddShowStampArgs(cmd, so)
	options.AddOutputArg(cmd, output)
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only entries whose emotion contains this text.")
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "Match the query fuzzily against emotion, context and journal.")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many entries.")

	topLevel.AddCommand(cmd)
}
