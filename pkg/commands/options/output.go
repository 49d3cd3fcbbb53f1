package options

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tableflip.dev/mindmap/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
	cmd.Flags().StringVarP(&po.Output, "output", "o", "",
		"Output format. One of 'json' or 'yaml'; human readable when empty.")
}

// Format resolves the flags to a printer format.
func (o *OutputOptions) Format() (printers.Format, error) {
	if o.JSON {
		return printers.FormatJSON, nil
	}
	switch f := printers.Format(strings.ToLower(strings.TrimSpace(o.Output))); f {
	case printers.FormatText, printers.FormatJSON, printers.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected json or yaml)", o.Output)
	}
}

// HandleError reports err in the selected structured format and swallows
// it; human readable output returns it unchanged.
func (o *OutputOptions) HandleError(err error) error {
	return o.handleError(color.Output, err)
}

func (o *OutputOptions) handleError(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	f, ferr := o.Format()
	if ferr != nil || f == printers.FormatText {
		return err
	}
	out := map[string]string{
		"error": err.Error(),
	}
	var b []byte
	switch f {
	case printers.FormatYAML:
		b, ferr = yaml.Marshal(out)
	default:
		b, ferr = json.Marshal(out)
	}
	if ferr != nil {
		return ferr
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(string(b), "\n"))
	return nil
}
