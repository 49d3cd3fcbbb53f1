package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/store"
)

var testNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := app.Open(store.NewMemory(),
		app.WithClock(func() time.Time { return testNow }),
		app.WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return NewService(s)
}

func TestServiceLogEmotion(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.LogEmotion(ctx, LogEmotionOptions{Emotion: "anxious", Intensity: 7, Context: "exam"})
	if err != nil {
		t.Fatalf("LogEmotion failed: %v", err)
	}
	if dto.Timestamp != "2025-01-15T12:00:00.000Z" {
		t.Fatalf("unexpected timestamp %s", dto.Timestamp)
	}
	if dto.Sector != "Fear" || dto.SectorColor != "#43aa8b" {
		t.Fatalf("expected Fear sector, got %+v", dto)
	}

	if _, err := svc.LogEmotion(ctx, LogEmotionOptions{Emotion: "Mad", Intensity: 12}); err == nil {
		t.Fatalf("expected out of range intensity to fail")
	}
}

func TestServiceDeleteEntry(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.LogEmotion(ctx, LogEmotionOptions{Emotion: "Calm", Intensity: 3})
	if err != nil {
		t.Fatalf("LogEmotion failed: %v", err)
	}
	if err := svc.DeleteEntry(ctx, dto.Timestamp); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if err := svc.DeleteEntry(ctx, dto.Timestamp); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestServiceListAndSearch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, opts := range []LogEmotionOptions{
		{Emotion: "Happy", Intensity: 8, Timestamp: "2025-01-14T09:00:00.000Z"},
		{Emotion: "Unhappy", Intensity: 2, Journal: "rainy commute", Timestamp: "2025-01-13T09:00:00.000Z"},
		{Emotion: "Proud", Intensity: 6, Timestamp: "2024-12-01T09:00:00.000Z"},
	} {
		if _, err := svc.LogEmotion(ctx, opts); err != nil {
			t.Fatalf("LogEmotion failed: %v", err)
		}
	}

	all, err := svc.ListEntries(ctx, ListOptions{})
	if err != nil || len(all) != 3 {
		t.Fatalf("ListEntries = %d, %v", len(all), err)
	}
	recent, _ := svc.ListEntries(ctx, ListOptions{Days: 7})
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent entries, got %d", len(recent))
	}
	limited, _ := svc.ListEntries(ctx, ListOptions{Limit: 1})
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply")
	}

	found, err := svc.SearchEntries(ctx, "happy", 20, false)
	if err != nil || len(found) != 2 {
		t.Fatalf("SearchEntries = %+v, %v", found, err)
	}
	fuzzy, err := svc.SearchEntries(ctx, "rainy", 20, true)
	if err != nil || len(fuzzy) != 1 || fuzzy[0].Emotion != "Unhappy" {
		t.Fatalf("fuzzy SearchEntries = %+v, %v", fuzzy, err)
	}
	if _, err := svc.SearchEntries(ctx, "  ", 20, false); err == nil {
		t.Fatalf("expected empty query to fail")
	}
}

func TestServiceSummaries(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	svc.LogEmotion(ctx, LogEmotionOptions{Emotion: "Happy", Intensity: 8, Timestamp: "2025-01-14T09:00:00.000Z"})
	svc.LogEmotion(ctx, LogEmotionOptions{Emotion: "Sad", Intensity: 3, Timestamp: "2024-12-25T09:00:00.000Z"})

	week, err := svc.WeeklySummary(ctx)
	if err != nil || week.TotalLogs != 1 || week.MostFrequentEmotion != "Happy" {
		t.Fatalf("WeeklySummary = %+v, %v", week, err)
	}
	month, err := svc.MonthlySummary(ctx)
	if err != nil || month.TotalLogs != 2 || len(month.WeeklyBreakdown) != 2 {
		t.Fatalf("MonthlySummary = %+v, %v", month, err)
	}
}

func TestServiceExportImport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	svc.LogEmotion(ctx, LogEmotionOptions{Emotion: "Happy", Intensity: 8, Timestamp: "2025-01-14T09:00:00.000Z"})

	dto, err := svc.Export(ctx, "csv")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if dto.FileName != "mindmap-emotions-2025-01-15.csv" || !strings.Contains(dto.Content, `"Happy"`) {
		t.Fatalf("unexpected export %+v", dto)
	}
	if _, err := svc.Export(ctx, "pdf"); err == nil {
		t.Fatalf("expected unsupported format")
	}

	other := newTestService(t)
	res, err := other.ImportCSV(ctx, dto.Content)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if res.Merged != 1 || res.Message != "Successfully imported 1 new emotion logs!" {
		t.Fatalf("unexpected import %+v", res)
	}
	again, _ := other.ImportCSV(ctx, dto.Content)
	if again.Merged != 0 || again.Duplicates != 1 {
		t.Fatalf("expected duplicate, got %+v", again)
	}
}

func TestServiceGoal(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.Goal(ctx)
	if err != nil || dto.Set {
		t.Fatalf("expected no goal, got %+v, %v", dto, err)
	}
	if _, err := svc.Store.SetGoal(app.Goal{Emotion: "Happy", Target: 2}); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	svc.LogEmotion(ctx, LogEmotionOptions{Emotion: "happy", Intensity: 8})
	dto, err = svc.Goal(ctx)
	if err != nil || !dto.Set || dto.Progress.Count != 1 || dto.Progress.Percent != 50 {
		t.Fatalf("unexpected goal %+v, %v", dto.Progress, err)
	}
}

func TestServiceRequiresStore(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.ListEntries(context.Background(), ListOptions{}); err == nil {
		t.Fatalf("expected error without store")
	}
}
