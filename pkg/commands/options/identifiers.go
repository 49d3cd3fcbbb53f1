package options

import (
	"github.com/spf13/cobra"
)

// StampOptions
type StampOptions struct {
	ShowStamp bool
}

func AddShowStampArgs(cmd *cobra.Command, o *StampOptions) {
	cmd.Flags().BoolVarP(&o.ShowStamp, "show-stamp", "k", false,
		"Show the timestamp of each entry, which is what delete takes.")
}
