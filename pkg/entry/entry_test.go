package entry

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		in      Candidate
		want    Entry
		wantErr string
	}{
		"trims and drops empty optionals": {
			in:   Candidate{Emotion: "  Happy ", Intensity: 8, Context: "  ", Journal: " went well ", Timestamp: "2025-01-15T14:30:00.000Z"},
			want: Entry{Emotion: "Happy", Intensity: 8, Journal: "went well", Timestamp: "2025-01-15T14:30:00.000Z"},
		},
		"whitespace emotion": {
			in:      Candidate{Emotion: " \t", Intensity: 5, Timestamp: "2025-01-15T14:30:00Z"},
			wantErr: "emotion",
		},
		"intensity too low": {
			in:      Candidate{Emotion: "Sad", Intensity: 0, Timestamp: "2025-01-15T14:30:00Z"},
			wantErr: "intensity",
		},
		"intensity too high": {
			in:      Candidate{Emotion: "Sad", Intensity: 11, Timestamp: "2025-01-15T14:30:00Z"},
			wantErr: "intensity",
		},
		"bounds are inclusive": {
			in:   Candidate{Emotion: "Calm", Intensity: 10, Timestamp: "2025-01-15T14:30:00+02:00"},
			want: Entry{Emotion: "Calm", Intensity: 10, Timestamp: "2025-01-15T14:30:00+02:00"},
		},
		"carriage returns fold to newlines": {
			in:   Candidate{Emotion: "Tired", Intensity: 4, Context: "a\rb", Journal: "line one\r\nline two\r\n", Timestamp: "2025-01-15T14:30:00Z"},
			want: Entry{Emotion: "Tired", Intensity: 4, Context: "a\nb", Journal: "line one\nline two", Timestamp: "2025-01-15T14:30:00Z"},
		},
		"bad timestamp": {
			in:      Candidate{Emotion: "Calm", Intensity: 3, Timestamp: "yesterday"},
			wantErr: "timestamp",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Validate(tc.in)
			if tc.wantErr != "" {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if verr.Field != tc.wantErr {
					t.Fatalf("expected field %q, got %q", tc.wantErr, verr.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 1, 15, 14, 30, 0, 123456789, time.UTC)
	if got := FormatTimestamp(ts); got != "2025-01-15T14:30:00.123Z" {
		t.Fatalf("unexpected timestamp %q", got)
	}
	parsed, err := ParseTime(FormatTimestamp(ts))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.Equal(ts.Truncate(time.Millisecond)) {
		t.Fatalf("expected %v, got %v", ts.Truncate(time.Millisecond), parsed)
	}
}

func TestDayUsesLocation(t *testing.T) {
	e := Entry{Emotion: "Joy", Intensity: 7, Timestamp: "2025-01-01T23:30:00.000Z"}
	loc := time.FixedZone("east", 2*60*60)
	day, ok := e.Day(loc)
	if !ok || day != "2025-01-02" {
		t.Fatalf("expected 2025-01-02, got %q (%v)", day, ok)
	}
	day, ok = e.Day(time.UTC)
	if !ok || day != "2025-01-01" {
		t.Fatalf("expected 2025-01-01, got %q (%v)", day, ok)
	}
}

func TestWhen(t *testing.T) {
	now := time.Date(2025, 7, 6, 18, 0, 0, 0, time.UTC)
	today := Entry{Timestamp: "2025-07-06T14:30:00.000Z"}
	if got := today.When(now, time.UTC); got != "Today 14:30" {
		t.Fatalf("unexpected %q", got)
	}
	earlier := Entry{Timestamp: "2025-07-01T09:05:00.000Z"}
	if got := earlier.When(now, time.UTC); got != "01-07-2025 09:05" {
		t.Fatalf("unexpected %q", got)
	}
	if got := today.Detailed(time.UTC); got != "6th July 2025 : 2:30PM" {
		t.Fatalf("unexpected %q", got)
	}
}
