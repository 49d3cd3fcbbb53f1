package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/commands/options"
	"tableflip.dev/mindmap/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a CSV or JSON export into the log",
		Long: `Merge a CSV or JSON file into the log. Entries whose timestamp is
already logged are skipped and never overwritten. CSV rows that cannot be
read are dropped; a JSON file with any invalid entry is rejected as a whole.`,
		Example: `
mindmap import mindmap-emotions-2025-01-15.csv
cat export.csv | mindmap import -
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a file to import, or - for stdin")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			out, err := output.Format()
			if err != nil {
				return err
			}
			var f app.Format
			if format != "" {
				if f, err = app.ParseFormat(format); err != nil {
					return err
				}
			}
			s, err := openSession()
			if err != nil {
				return output.HandleError(err)
			}
			i := importer.Import{
				Store:  s.log,
				Path:   args[0],
				Format: f,
				In:     cmd.InOrStdin(),
				Output: out,
				Out:    cmd.OutOrStdout(),
			}
			err = i.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Import format, json or csv; inferred from the extension when empty.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
