package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/commands/options"
	"tableflip.dev/mindmap/pkg/runner/summary"
)

func addSummary(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var calendar bool

	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"dashboard", "stats"},
		Short:   "Weekly and monthly summaries with emotion charts",
		Example: `
mindmap summary
mindmap summary --calendar
mindmap summary -w 2w -o yaml
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
			r := summary.Summary{
				Store:    s.log,
				Days:     days,
				Calendar: calendar,
				Location: s.config.Location(),
				Theme:    styleFor(out),
				Output:   format,
				Out:      out,
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo, "")
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Also print this month with logged days highlighted.")

	topLevel.AddCommand(cmd)
}
