package importer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/runner/export"
	"tableflip.dev/mindmap/pkg/store"
)

func openStore(t *testing.T) *app.LogStore {
	t.Helper()
	s, err := app.Open(store.NewMemory(),
		app.WithClock(func() time.Time { return time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC) }),
		app.WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestExportThenImport(t *testing.T) {
	for _, format := range []app.Format{app.FormatCSV, app.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			src := openStore(t)
			src.Create(entry.Candidate{Emotion: "Proud", Intensity: 7, Context: "shipped, finally", Timestamp: "2025-01-14T08:00:00.000Z"})
			src.Create(entry.Candidate{Emotion: "Lonely", Intensity: 3, Journal: "quiet\nevening", Timestamp: "2025-01-13T20:00:00.000Z"})

			dir := t.TempDir()
			var out bytes.Buffer
			ex := &export.Export{Store: src, Format: format, Dir: dir, Out: &out}
			if err := ex.Do(context.Background()); err != nil {
				t.Fatalf("export: %v", err)
			}
			path := filepath.Join(dir, "mindmap-emotions-2025-01-15."+string(format))
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("expected export file: %v", err)
			}

			dst := openStore(t)
			out.Reset()
			im := &Import{Store: dst, Path: path, Out: &out}
			if err := im.Do(context.Background()); err != nil {
				t.Fatalf("import: %v", err)
			}
			if !strings.Contains(out.String(), "Successfully imported 2 new emotion logs!") {
				t.Fatalf("message = %q", out.String())
			}
			got := dst.Entries()
			want := src.Entries()
			if len(got) != len(want) {
				t.Fatalf("got %d entries", len(got))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestImportStdin(t *testing.T) {
	dst := openStore(t)
	var out bytes.Buffer
	im := &Import{
		Store: dst,
		Path:  Stdin,
		In:    strings.NewReader("Emotion,Intensity\n\"Startled\",6\n"),
		Out:   &out,
	}
	if err := im.Do(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}
	if dst.Len() != 1 || dst.Entries()[0].Emotion != "Startled" {
		t.Fatalf("entries = %+v", dst.Entries())
	}
}

func TestImportUnknownExtension(t *testing.T) {
	im := &Import{Store: openStore(t), Path: "notes.txt"}
	if err := im.Do(context.Background()); err == nil {
		t.Fatalf("expected unsupported format")
	}
}
