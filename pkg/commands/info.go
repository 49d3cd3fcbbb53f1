package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where the log is stored and how much it holds.",
		Example: `
mindmap info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			i := info.Info{
				Config: s.config,
				Store:  s.log,
				Out:    cmd.OutOrStdout(),
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
