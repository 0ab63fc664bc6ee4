package analytics_test

import (
	"testing"
	"time"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthWindowBounds(t *testing.T) {
	w := analytics.MonthWindow(2024, time.February)
	if !w.Start.Equal(day(2024, time.February, 1)) {
		t.Fatalf("start = %s", w.Start)
	}
	if !w.End.Equal(day(2024, time.February, 29)) {
		t.Fatalf("end = %s, want leap-year Feb 29", w.End)
	}
}

func TestQuarterWindowBounds(t *testing.T) {
	w := analytics.QuarterWindow(2024, 2)
	if !w.Start.Equal(day(2024, time.April, 1)) || !w.End.Equal(day(2024, time.June, 30)) {
		t.Fatalf("Q2 window = [%s, %s]", w.Start, w.End)
	}
}

func TestYearWindowBounds(t *testing.T) {
	w := analytics.YearWindow(2024)
	if !w.Start.Equal(day(2024, time.January, 1)) || !w.End.Equal(day(2024, time.December, 31)) {
		t.Fatalf("year window = [%s, %s]", w.Start, w.End)
	}
}

func TestWindowContainsIgnoresTimeOfDay(t *testing.T) {
	w := analytics.MonthWindow(2024, time.January)
	if !w.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)) {
		t.Fatal("end day must cover the entire day")
	}
	if w.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("first day of the next month must be outside")
	}
}

func TestWindowIsEmptyWhenInverted(t *testing.T) {
	w := analytics.Range(day(2024, time.March, 10), day(2024, time.March, 1))
	if !w.IsEmpty() {
		t.Fatal("inverted window must be empty")
	}
	if w.Contains(day(2024, time.March, 5)) {
		t.Fatal("empty window must contain nothing")
	}
}

func TestPreviousCalendarMonth(t *testing.T) {
	prev := analytics.MonthWindow(2024, time.March).Previous()
	if !prev.Start.Equal(day(2024, time.February, 1)) || !prev.End.Equal(day(2024, time.February, 29)) {
		t.Fatalf("previous of March = [%s, %s], want February", prev.Start, prev.End)
	}
}

func TestPreviousArbitraryRange(t *testing.T) {
	w := analytics.Range(day(2024, time.March, 11), day(2024, time.March, 20))
	prev := w.Previous()
	if !prev.Start.Equal(day(2024, time.March, 1)) || !prev.End.Equal(day(2024, time.March, 10)) {
		t.Fatalf("previous 10-day range = [%s, %s]", prev.Start, prev.End)
	}
}
