package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(mindmap completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(mindmap completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// timestampCompletions offers the timestamps of logged entries.
func timestampCompletions(toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil
	}
	l, err := app.Open(p)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range l.Entries() {
		if strings.HasPrefix(e.Timestamp, toComplete) {
			out = append(out, e.Timestamp+"\t"+e.Emotion)
		}
	}
	return out
}
