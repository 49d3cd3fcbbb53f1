package wheel

import (
	"fmt"
	"io"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// subShade is how far sub-emotion swatches are blended toward white.
const subShade = 0.35

// Palette maps labels to terminal colours for one output.
type Palette struct {
	out *termenv.Output
}

// NewPalette detects the colour profile of w. Pass termenv.WithProfile to
// force one.
func NewPalette(w io.Writer, opts ...termenv.OutputOption) *Palette {
	return &Palette{out: termenv.NewOutput(w, opts...)}
}

// Paint colours text with the sector colour of label. Labels that are not
// on the wheel are returned unchanged.
func (p *Palette) Paint(label, text string) string {
	s, ok := Lookup(label)
	if !ok {
		return text
	}
	hex := s.Color
	if !strings.EqualFold(strings.TrimSpace(label), s.Name) {
		hex = Shade(s.Color, subShade)
	}
	return p.out.String(text).Foreground(p.out.Color(hex)).String()
}

// Shade blends hex toward white by amount in [0, 1]. Invalid colours are
// returned unchanged.
func Shade(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	switch {
	case amount <= 0:
		return c.Hex()
	case amount >= 1:
		return white.Hex()
	}
	return c.BlendLab(white, amount).Clamped().Hex()
}

// Render writes the wheel, one sector per line with a swatch for each label.
func Render(w io.Writer, p *Palette) error {
	for _, s := range Sectors {
		swatch := p.out.String("  ").Background(p.out.Color(s.Color)).String()
		name := p.out.String(fmt.Sprintf("%-9s", s.Name)).Bold().Foreground(p.out.Color(s.Color)).String()
		subs := make([]string, 0, len(s.Subs))
		for _, sub := range s.Subs {
			subs = append(subs, p.Paint(sub, sub))
		}
		if _, err := fmt.Fprintf(w, "%s %s  %s\n", swatch, name, strings.Join(subs, ", ")); err != nil {
			return err
		}
	}
	return nil
}
