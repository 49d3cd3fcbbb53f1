package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/commands/options"
	"tableflip.dev/mindmap/pkg/prompt"
	"tableflip.dev/mindmap/pkg/runner/log"
	"tableflip.dev/mindmap/pkg/wheel"
)

func addLog(topLevel *cobra.Command) {
	lo := &options.LogOptions{}
	ino := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "log [emotion]",
		Short: "Log how you are feeling",
		Example: `
mindmap log Joyful -n 8 -c "finished the release"
mindmap log anxious --at "2025-1-14 18:30"
mindmap log -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := output.Format()
			if err != nil {
				return err
			}
			s, err := openSession()
			if err != nil {
				return output.HandleError(err)
			}
			ts, err := lo.Timestamp(s.log.Now(), s.config.Location())
			if err != nil {
				return output.HandleError(err)
			}

			out := cmd.OutOrStdout()
			l := log.Log{
				Store:        s.log,
				Emotion:      strings.Join(args, " "),
				Intensity:    lo.Intensity,
				IntensitySet: cmd.Flags().Changed("intensity"),
				Context:      lo.Context,
				Journal:      lo.Journal,
				Timestamp:    ts,
				Output:       format,
				Out:          out,
				Palette:      paletteFor(out),
			}
			if ino.PickEmotion(len(args) > 0, isTerminal(out)) {
				l.Picker = wheel.PromptPicker{}
			}
			if ino.AskDetails() {
				l.Asker = prompt.Prompter{}
			}
			err = l.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddLogArgs(cmd, lo)
	options.InteractiveArgs(cmd, ino)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
