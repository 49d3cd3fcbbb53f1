package codec

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/mindmap/pkg/entry"
)

func sampleLog() []entry.Entry {
	return []entry.Entry{
		{Emotion: "Happy", Intensity: 8, Context: "Work deadline", Journal: "Felt relieved after submitting", Timestamp: "2025-01-15T14:30:00.000Z"},
		{Emotion: "Sad", Intensity: 3, Timestamp: "2025-01-14T08:00:00.000Z"},
		{Emotion: "Anxious, a bit", Intensity: 6, Context: `said "no" twice`, Journal: "line one\nline two", Timestamp: "2025-01-13T22:15:30.250Z"},
		{Emotion: "Calm <3 & rested", Intensity: 10, Context: "weekend", Timestamp: "2025-01-12T06:45:00Z"},
	}
}

func fixedCSV() *CSV {
	return &CSV{
		Columns:  DefaultColumns(),
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for name, log := range map[string][]entry.Entry{
		"empty":  {},
		"sample": sampleLog(),
	} {
		t.Run(name, func(t *testing.T) {
			text, err := SerializeJSON(log)
			if err != nil {
				t.Fatalf("serialize: %v", err)
			}
			got, err := ParseJSON(text)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if !reflect.DeepEqual(got, log) {
				t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", log, got)
			}
		})
	}
}

func TestSerializeJSONShape(t *testing.T) {
	text, err := SerializeJSON([]entry.Entry{
		{Emotion: "Joy", Intensity: 7, Journal: "a & b", Timestamp: "2025-01-01T10:00:00.000Z"},
	})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := `[
  {
    "emotion": "Joy",
    "intensity": 7,
    "journal": "a & b",
    "timestamp": "2025-01-01T10:00:00.000Z"
  }
]`
	if text != want {
		t.Fatalf("unexpected json:\n%s", text)
	}

	empty, err := SerializeJSON(nil)
	if err != nil {
		t.Fatalf("serialize nil: %v", err)
	}
	if empty != "[]" {
		t.Fatalf("expected [], got %q", empty)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON(`[{"emotion": "Joy",`)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if derr.Format != "json" {
		t.Fatalf("unexpected format %q", derr.Format)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	c := fixedCSV()
	crlf, err := entry.Validate(entry.Candidate{
		Emotion:   "Tired",
		Intensity: 4,
		Context:   "windows\rnotes",
		Journal:   "line one\r\nline two",
		Timestamp: "2025-01-11T19:00:00.000Z",
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	log := append(sampleLog(), crlf)
	got := c.Parse(c.Serialize(log))
	if !reflect.DeepEqual(got, log) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", log, got)
	}
}

func TestSerializeCSVFormat(t *testing.T) {
	c := fixedCSV()
	text := c.Serialize(sampleLog()[:2])
	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), text)
	}
	if lines[0] != "Emotion,Intensity,Context,Journal,Date,Time,Timestamp" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if want := `"Happy",8,"Work deadline","Felt relieved after submitting",2025-01-15,14:30:00,2025-01-15T14:30:00.000Z`; lines[1] != want {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if want := `"Sad",3,"","",2025-01-14,08:00:00,2025-01-14T08:00:00.000Z`; lines[2] != want {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestParseCSVDocumentedExample(t *testing.T) {
	got := fixedCSV().Parse("Emotion,Intensity,Context,Journal,Date,Time,Timestamp\n" +
		"Happy,8,Work deadline,Felt relieved after submitting,2025-01-15,14:30:00,2025-01-15T14:30:00.000Z\n")
	want := []entry.Entry{{
		Emotion:   "Happy",
		Intensity: 8,
		Context:   "Work deadline",
		Journal:   "Felt relieved after submitting",
		Timestamp: "2025-01-15T14:30:00.000Z",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestParseCSVTimestampPrecedence(t *testing.T) {
	c := fixedCSV()
	c.Location = time.FixedZone("plus2", 2*60*60)

	got := c.Parse("emotion,intensity,date,time,timestamp\n" +
		"Joy,7,2025-03-01,09:30:00,2025-03-01T00:00:00.000Z\n" +
		"Joy,7,2025-03-01,09:30:00,\n" +
		"Joy,7,2025-03-02,09:30,\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %+v", got)
	}
	if got[0].Timestamp != "2025-03-01T00:00:00.000Z" {
		t.Fatalf("timestamp column should win, got %q", got[0].Timestamp)
	}
	if got[1].Timestamp != "2025-03-01T07:30:00.000Z" {
		t.Fatalf("date and time should combine in location, got %q", got[1].Timestamp)
	}
	if got[2].Timestamp != "2025-03-02T07:30:00.000Z" {
		t.Fatalf("minute precision time should parse, got %q", got[2].Timestamp)
	}
}

func TestParseCSVFallsBackToNow(t *testing.T) {
	got := fixedCSV().Parse("Mood Emotion,Level Intensity\nCalm,4\nTense,6\n")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %+v", got)
	}
	if got[0].Timestamp != "2025-02-01T12:00:00.000Z" {
		t.Fatalf("unexpected fallback timestamp %q", got[0].Timestamp)
	}
	if got[1].Timestamp != "2025-02-01T12:00:00.001Z" {
		t.Fatalf("fallback timestamps must stay unique, got %q", got[1].Timestamp)
	}
}

func TestParseCSVDropsUnusableRows(t *testing.T) {
	got := fixedCSV().Parse("Emotion,Intensity,Timestamp\n" +
		",5,2025-01-01T00:00:00Z\n" +
		"Joy,abc,2025-01-02T00:00:00Z\n" +
		"Joy,7.9,2025-01-03T00:00:00Z\n" +
		"Joy,42,2025-01-04T00:00:00Z\n" +
		"Joy,4,not-a-time\n" +
		"\n" +
		"Joy,2,2025-01-02T00:00:00Z\n")
	want := []entry.Entry{
		{Emotion: "Joy", Intensity: 5, Timestamp: "2025-01-02T00:00:00Z"},
		{Emotion: "Joy", Intensity: 7, Timestamp: "2025-01-03T00:00:00Z"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestParseCSVEmptyInputs(t *testing.T) {
	for name, text := range map[string]string{
		"empty":       "",
		"blank":       "\n\n",
		"header only": "Emotion,Intensity,Context,Journal,Date,Time,Timestamp\n",
	} {
		t.Run(name, func(t *testing.T) {
			got := fixedCSV().Parse(text)
			if got == nil || len(got) != 0 {
				t.Fatalf("expected empty non-nil slice, got %#v", got)
			}
		})
	}
}

func TestColumnsResolve(t *testing.T) {
	cols := DefaultColumns().Resolve([]string{"\ufeffTimestamp", "Time", "Emotion Label", "INTENSITY"})
	want := map[Field]int{
		FieldTimestamp: 0,
		FieldTime:      1,
		FieldEmotion:   2,
		FieldIntensity: 3,
	}
	if !reflect.DeepEqual(cols, want) {
		t.Fatalf("unexpected resolution %v", cols)
	}

	custom := Columns{FieldEmotion: {"feeling", "mood"}}
	if got := custom.Resolve([]string{"Mood", "Feeling"}); got[FieldEmotion] != 1 {
		t.Fatalf("expected first fragment to win, got %v", got)
	}
}
