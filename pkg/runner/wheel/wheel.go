// Package wheel provides the runner that displays the emotion wheel.
package wheel

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mindmap/pkg/printers"
	emotions "tableflip.dev/mindmap/pkg/wheel"
)

// Wheel prints the wheel sectors with their sub-emotions.
type Wheel struct {
	// Swatches paints the wheel with sector colours instead of a table.
	Swatches bool
	Palette  *emotions.Palette
	Output   printers.Format
	Out      io.Writer
}

// Do renders the wheel to Out.
func (k *Wheel) Do(ctx context.Context) error {
	if k.Output != printers.FormatText {
		return printers.Structured(k.Out, k.Output, emotions.Sectors)
	}
	_, _ = fmt.Fprintln(k.Out, "")
	if k.Swatches && k.Palette != nil {
		if err := emotions.Render(k.Out, k.Palette); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(k.Out, "")
		return nil
	}
	k.Table(ctx, emotions.Sectors)
	_, _ = fmt.Fprintln(k.Out, "")
	return nil
}

// Table renders the sectors as a legend.
func (k *Wheel) Table(_ context.Context, sectors []emotions.Sector) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Emotion"), bold.Sprint("Colour"), bold.Sprint("Feelings"))
	for _, s := range sectors {
		name := s.Name
		if k.Palette != nil {
			name = k.Palette.Paint(s.Name, s.Name)
		}
		tbl.AddRow(name, s.Color, strings.Join(s.Subs, ", "))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.Out, tbl)
}
