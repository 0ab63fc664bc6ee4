package analytics

import "time"

// Window is a date interval inclusive on both ends, compared at day
// granularity: a record dated anywhere inside the End day is still inside
// the window. A window whose Start is after its End is simply empty.
type Window struct {
	Start time.Time
	End   time.Time
}

func MonthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}

func QuarterWindow(year, quarter int) Window {
	if quarter < 1 {
		quarter = 1
	}
	if quarter > 4 {
		quarter = 4
	}
	start := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 3, -1)}
}

func YearWindow(year int) Window {
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func Range(from, to time.Time) Window {
	return Window{Start: from, End: to}
}

func (w Window) IsEmpty() bool {
	return dateOnly(w.Start).After(dateOnly(w.End))
}

func (w Window) Contains(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(w.Start)) && !d.After(dateOnly(w.End))
}

// Previous returns the window of equal day length immediately preceding w,
// used as the reference period for deltas. A calendar month maps onto the
// previous calendar month rather than a fixed day count.
func (w Window) Previous() Window {
	start := dateOnly(w.Start)
	end := dateOnly(w.End)

	if isCalendarMonth(start, end) {
		prev := start.AddDate(0, -1, 0)
		return MonthWindow(prev.Year(), prev.Month())
	}

	days := int(end.Sub(start).Hours()/24) + 1
	return Window{
		Start: start.AddDate(0, 0, -days),
		End:   start.AddDate(0, 0, -1),
	}
}

func isCalendarMonth(start, end time.Time) bool {
	if start.Day() != 1 {
		return false
	}
	next := start.AddDate(0, 1, -1)
	return end.Equal(next)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
