package info

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/store"
)

func TestInfo(t *testing.T) {
	color.NoColor = true
	t.Setenv(store.ConfigPathEnv, "")

	cfg, err := store.NewConfig(":memory:", "UTC")
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	s, err := app.Open(store.NewMemory(), app.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.SetGoal(app.Goal{Emotion: "Calm", Target: 3}); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}

	var buf bytes.Buffer
	if err := (&Info{Config: cfg, Store: s, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{"env var not set", "Config.path: :memory:", "Config.timezone: UTC", "Entries: 0", "Goal: Calm x3 per week"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}
