package entry

import (
	"fmt"
	"time"
)

// When renders the entry time for the timeline: "Today" for entries on the
// current day, dd-MM-yyyy otherwise, followed by the local clock time.
func (e Entry) When(now time.Time, loc *time.Location) string {
	t, err := e.Time()
	if err != nil {
		return e.Timestamp
	}
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	day := local.Format("02-01-2006")
	if SameDay(local, now, loc) {
		day = "Today"
	}
	return fmt.Sprintf("%s %s", day, local.Format("15:04"))
}

// Detailed renders the long date form, for example "6th July 2025 : 2:30PM".
func (e Entry) Detailed(loc *time.Location) string {
	t, err := e.Time()
	if err != nil {
		return e.Timestamp
	}
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return fmt.Sprintf("%d%s %s %d : %s", local.Day(), daySuffix(local.Day()),
		local.Month(), local.Year(), local.Format("3:04PM"))
}

func daySuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
