package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var (
		format string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the log to mindmap-emotions-<date>.json or .csv",
		Example: `
mindmap export
mindmap export -f csv -d ~/backups
mindmap export -f csv -d - > emotions.csv
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			f, err := app.ParseFormat(format)
			if err != nil {
				return err
			}
			s, err := openSession()
			if err != nil {
				return err
			}
			e := export.Export{
				Store:  s.log,
				Format: f,
				Dir:    dir,
				Out:    cmd.OutOrStdout(),
			}
			return e.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(app.FormatJSON), "Export format, json or csv.")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write into, or - for stdout.")

	topLevel.AddCommand(cmd)
}
