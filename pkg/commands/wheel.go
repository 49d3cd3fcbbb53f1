package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/commands/options"
	"tableflip.dev/mindmap/pkg/runner/wheel"
)

func addWheel(topLevel *cobra.Command) {
	var swatches bool

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Print the emotion wheel",
		Example: `
mindmap wheel
mindmap wheel --swatches
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Format()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			k := wheel.Wheel{
				Swatches: swatches,
				Palette:  paletteFor(out),
				Output:   format,
				Out:      out,
			}
			err = k.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&swatches, "swatches", false, "Paint colour swatches instead of a table.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
