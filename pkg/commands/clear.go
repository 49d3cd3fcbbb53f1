package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/prompt"
	"tableflip.dev/mindmap/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry",
		Example: `
mindmap export -d ~/backups
mindmap clear --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return output.HandleError(err)
			}
			c := clear.Clear{
				Store: s.log,
				Yes:   yes,
				Out:   cmd.OutOrStdout(),
			}
			if isTerminal(cmd.OutOrStdout()) {
				c.Confirm = prompt.Prompter{}.Confirm
			}
			err = c.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")

	topLevel.AddCommand(cmd)
}
