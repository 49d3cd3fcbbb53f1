package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/mindmap/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mindmap",
		Short: base.Wrap80("Track how you feel from the command line: log emotions, review the timeline and read weekly and monthly summaries."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addTimeline(topLevel)
	addDelete(topLevel)
	addClear(topLevel)
	addSummary(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addGoal(topLevel)
	addWheel(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
}
