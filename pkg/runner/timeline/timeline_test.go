package timeline

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/printers"
	"tableflip.dev/mindmap/pkg/store"
)

func seeded(t *testing.T) *app.LogStore {
	t.Helper()
	s, err := app.Open(store.NewMemory(), app.WithClock(func() time.Time {
		return time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, c := range []entry.Candidate{
		{Emotion: "Sad", Intensity: 3, Timestamp: "2024-12-01T10:00:00.000Z"},
		{Emotion: "Happy", Intensity: 8, Journal: "long walk by the river", Timestamp: "2025-01-13T10:00:00.000Z"},
		{Emotion: "Unhappy", Intensity: 2, Timestamp: "2025-01-14T10:00:00.000Z"},
	} {
		if _, err := s.Create(c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	return s
}

func TestSelect(t *testing.T) {
	s := seeded(t)
	tests := []struct {
		name string
		tl   Timeline
		want []string
	}{
		{name: "all", tl: Timeline{}, want: []string{"Unhappy", "Happy", "Sad"}},
		{name: "week", tl: Timeline{Days: 7}, want: []string{"Unhappy", "Happy"}},
		{name: "query", tl: Timeline{Query: "HAPPY"}, want: []string{"Unhappy", "Happy"}},
		{name: "fuzzy", tl: Timeline{Query: "river", Fuzzy: true}, want: []string{"Happy"}},
		{name: "limit", tl: Timeline{Limit: 1}, want: []string{"Unhappy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.tl.Store = s
			got := tt.tl.Select()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Emotion != tt.want[i] {
					t.Fatalf("entry %d = %s, want %s", i, got[i].Emotion, tt.want[i])
				}
			}
		})
	}
}

func TestDoJSON(t *testing.T) {
	var buf bytes.Buffer
	tl := &Timeline{Store: seeded(t), Days: 7, Output: printers.FormatJSON, Out: &buf}
	if err := tl.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got []entry.Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries", len(got))
	}
}
