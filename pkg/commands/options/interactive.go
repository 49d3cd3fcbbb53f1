package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions controls prompting for values missing from the
// command line.
type InteractiveOptions struct {
	Interactive bool
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Pick the emotion from the wheel and prompt for intensity, context and journal.`)
}

// PickEmotion reports whether the emotion should come from the wheel picker.
// Without -i the picker is only used on a terminal when no emotion was given.
func (o *InteractiveOptions) PickEmotion(haveEmotion, terminal bool) bool {
	return o.Interactive || (!haveEmotion && terminal)
}

// AskDetails reports whether the remaining fields are prompted for.
func (o *InteractiveOptions) AskDetails() bool {
	return o.Interactive
}
