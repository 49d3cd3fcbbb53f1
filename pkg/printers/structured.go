package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects structured output.
type Format string

const (
	FormatText Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Structured writes v as indented JSON or as YAML.
func Structured(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("printers: unsupported output format %q", f)
	}
}
