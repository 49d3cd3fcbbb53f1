package clear

import (
	"bytes"
	"context"
	"testing"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/store"
)

func TestClearNeedsConfirmation(t *testing.T) {
	s, err := app.Open(store.NewMemory())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Create(entry.Candidate{Emotion: "Awful", Intensity: 2})
	var out bytes.Buffer

	if err := (&Clear{Store: s, Out: &out}).Do(context.Background()); err == nil {
		t.Fatalf("expected refusal without confirmation")
	}
	no := func(string) (bool, error) { return false, nil }
	if err := (&Clear{Store: s, Confirm: no, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("declined clear removed entries")
	}
	if err := (&Clear{Store: s, Yes: true, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty log")
	}
}
