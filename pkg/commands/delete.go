package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <timestamp>",
		Short: "Delete one entry, addressed by its timestamp",
		Example: `
mindmap timeline -k
mindmap delete 2025-01-15T14:30:00.000Z
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires the timestamp of the entry, see timeline -k")
			}
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return timestampCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return output.HandleError(err)
			}
			r := remove.Remove{
				Store:     s.log,
				Timestamp: args[0],
				Out:       cmd.OutOrStdout(),
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
