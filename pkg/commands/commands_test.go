package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/mindmap/pkg/entry"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("mindmap %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestLogThenTimeline(t *testing.T) {
	t.Setenv("MINDMAP_PATH", filepath.Join(t.TempDir(), "db"))
	t.Setenv("MINDMAP_TIMEZONE", "UTC")

	run(t, "log", "joyful", "-n", "8", "-c", "release day", "--at", "2025-01-14T10:00:00.000Z")
	run(t, "log", "Sad", "-n", "2", "--at", "2025-01-13T10:00:00.000Z")

	var got []entry.Entry
	if err := json.Unmarshal([]byte(run(t, "timeline", "-o", "json")), &got); err != nil {
		t.Fatalf("decode timeline: %v", err)
	}
	if len(got) != 2 || got[0].Emotion != "Joyful" || got[1].Emotion != "Sad" {
		t.Fatalf("timeline = %+v", got)
	}

	run(t, "delete", "2025-01-13T10:00:00.000Z")
	if err := json.Unmarshal([]byte(run(t, "timeline", "--json")), &got); err != nil {
		t.Fatalf("decode timeline: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one entry after delete, got %d", len(got))
	}
}

func TestMemoryStoreCommands(t *testing.T) {
	t.Setenv("MINDMAP_PATH", ":memory:")

	out := run(t, "wheel")
	if !strings.Contains(out, "Aggressive") || !strings.Contains(out, "#f94144") {
		t.Fatalf("wheel = %q", out)
	}
	if out := run(t, "goal"); !strings.Contains(out, "No goal set") {
		t.Fatalf("goal = %q", out)
	}
}

func TestUnknownOutputFormat(t *testing.T) {
	t.Setenv("MINDMAP_PATH", ":memory:")
	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"timeline", "-o", "xml"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestLogRejectsZeroIntensity(t *testing.T) {
	t.Setenv("MINDMAP_PATH", ":memory:")
	t.Setenv("MINDMAP_TIMEZONE", "UTC")
	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"log", "Joy", "-n", "0", "--at", "2025-01-14T10:00:00.000Z"})
	err := cmd.Execute()
	var verr *entry.ValidationError
	if !errors.As(err, &verr) || verr.Field != "intensity" {
		t.Fatalf("err = %v, want intensity validation error", err)
	}
}
