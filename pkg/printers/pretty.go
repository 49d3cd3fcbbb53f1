package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/wheel"
)

// PrettyPrint writes human readable views of the log.
type PrettyPrint struct {
	Out      io.Writer
	Location *time.Location
	Now      time.Time
	// ShowStamp adds the raw timestamp column, which is what delete takes.
	ShowStamp bool
	// Width wraps journal text; zero means 72 columns.
	Width   int
	Palette *wheel.Palette
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 72
	}
	return pp.Width
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Warning prints a highlighted notice, used for the standing persistence
// error and similar conditions that do not stop the command.
func (pp *PrettyPrint) Warning(format string, args ...interface{}) {
	w := color.New(color.FgHiRed, color.Bold)
	_, _ = w.Fprintf(pp.out(), "! "+format+"\n", args...)
}

// Message prints a plain status line.
func (pp *PrettyPrint) Message(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(pp.out(), format+"\n", args...)
}

// Timeline prints entries in the order given, one table row per entry with
// the journal wrapped underneath.
func (pp *PrettyPrint) Timeline(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.Wrap = true

	for _, e := range entries {
		row := []interface{}{
			faint.Sprint(e.When(pp.now(), pp.Location)),
			pp.emotion(e.Emotion),
			IntensityBar(e.Intensity),
			e.Context,
		}
		if pp.ShowStamp {
			row = append(row, faint.Sprint(e.Timestamp))
		}
		tbl.AddRow(row...)
		if e.Journal != "" {
			tbl.AddRow("", faint.Sprint(pp.indent(e.Journal)))
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Entry prints one entry in full.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	b := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = fmt.Fprintf(pp.out(), "%s  %s\n", b.Sprint(pp.emotion(e.Emotion)), IntensityBar(e.Intensity))
	_, _ = faint.Fprintln(pp.out(), e.Detailed(pp.Location))
	if e.Context != "" {
		_, _ = fmt.Fprintf(pp.out(), "Context: %s\n", e.Context)
	}
	if e.Journal != "" {
		_, _ = fmt.Fprintln(pp.out(), wordwrap.String(e.Journal, pp.width()))
	}
	_, _ = faint.Fprintln(pp.out(), e.Timestamp)
}

func (pp *PrettyPrint) emotion(label string) string {
	if pp.Palette == nil {
		return label
	}
	return pp.Palette.Paint(label, label)
}

func (pp *PrettyPrint) indent(journal string) string {
	wrapped := wordwrap.String(journal, pp.width())
	return strings.TrimRight(wrapped, "\n")
}

// IntensityBar draws intensity as filled and empty blocks on a ten step
// scale, followed by the number.
func IntensityBar(intensity int) string {
	n := intensity
	if n < 0 {
		n = 0
	}
	if n > entry.MaxIntensity {
		n = entry.MaxIntensity
	}
	return fmt.Sprintf("%s%s %2d", strings.Repeat("█", n), strings.Repeat("░", entry.MaxIntensity-n), intensity)
}
