package wheel

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		label  string
		sector string
		ok     bool
	}{
		{label: "Anger", sector: "Anger", ok: true},
		{label: "frustrated", sector: "Anger", ok: true},
		{label: "  ANXIOUS ", sector: "Fear", ok: true},
		{label: "Guilty", sector: "Sad", ok: true},
		{label: "playful", sector: "Happy", ok: true},
		{label: "Amazed", sector: "Surprise", ok: true},
		{label: "embarrassed", sector: "Disgust", ok: true},
		{label: "Content", ok: false},
		{label: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			s, ok := Lookup(tt.label)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v", tt.label, ok)
			}
			if ok && s.Name != tt.sector {
				t.Fatalf("Lookup(%q) = %s, want %s", tt.label, s.Name, tt.sector)
			}
		})
	}
}

func TestSectorsShape(t *testing.T) {
	if len(Sectors) != 6 {
		t.Fatalf("expected six sectors, got %d", len(Sectors))
	}
	seen := map[string]bool{}
	for _, l := range Labels() {
		if seen[strings.ToLower(l)] {
			t.Fatalf("duplicate label %q", l)
		}
		seen[strings.ToLower(l)] = true
	}
	if len(seen) != 24 {
		t.Fatalf("expected 24 labels, got %d", len(seen))
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical(" joyful"); got != "Joyful" {
		t.Fatalf("Canonical = %q", got)
	}
	if got := Canonical(" Content "); got != "Content" {
		t.Fatalf("Canonical = %q", got)
	}
}

func TestShade(t *testing.T) {
	if got := Shade("#f94144", 0); got != "#f94144" {
		t.Fatalf("Shade 0 = %s", got)
	}
	if got := Shade("#f94144", 1); got != "#ffffff" {
		t.Fatalf("Shade 1 = %s", got)
	}
	if got := Shade("nope", 0.5); got != "nope" {
		t.Fatalf("invalid colour = %s", got)
	}
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPalette(&buf, termenv.WithProfile(termenv.Ascii))
	if err := Render(&buf, p); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("ascii profile should not emit escapes: %q", out)
	}
	if lines := strings.Count(out, "\n"); lines != 6 {
		t.Fatalf("expected six lines, got %d", lines)
	}
	if !strings.Contains(out, "Mad, Frustrated, Aggressive") {
		t.Fatalf("missing anger subs: %q", out)
	}
	if got := p.Paint("Happy", "x"); got != "x" {
		t.Fatalf("Paint with ascii = %q", got)
	}
}

func TestStaticPicker(t *testing.T) {
	got, err := StaticPicker{Label: "proud"}.Pick(context.Background())
	if err != nil || got != "Proud" {
		t.Fatalf("Pick = %q, %v", got, err)
	}
	if _, err := (StaticPicker{}).Pick(context.Background()); err == nil {
		t.Fatalf("expected error for empty label")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (StaticPicker{Label: "Mad"}).Pick(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
