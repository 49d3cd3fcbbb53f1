package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mindmap/pkg/analytics"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing then, with logged days in bold. The
// buckets come from a monthly breakdown; buckets outside the month are
// ignored.
func (pp *PrettyPrint) Calendar(then time.Time, buckets []analytics.DayBucket) {
	count := make([]int, DaysIn(then))
	prefix := then.Format("2006-01-")
	for _, b := range buckets {
		if !strings.HasPrefix(b.Week, prefix) {
			continue
		}
		var day int
		if _, err := fmt.Sscanf(strings.TrimPrefix(b.Week, prefix), "%d", &day); err != nil {
			continue
		}
		if day >= 1 && day <= len(count) {
			count[day-1] += b.Count
		}
	}
	pp.PrintMonthCount(then, count)
}

// PrintMonthCount prints a month grid, Sunday first, highlighting days with
// a non-zero count.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

// DaysIn is the number of days in the month of then.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay is the weekday the month of then starts on.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
