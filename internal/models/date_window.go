package models

import "time"

// Calendar bounds substituted for an unbounded side of a requested range.
var (
	MinDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// DateWindow is the inclusive span of calendar dates a file is believed to
// cover. It is derived once per file and never mutated afterwards.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow creates a window from two dates, normalizing both to
// midnight UTC and swapping them if given out of order so that Start <= End
// always holds.
func NewDateWindow(start, end time.Time) DateWindow {
	start = Day(start)
	end = Day(end)
	if end.Before(start) {
		start, end = end, start
	}
	return DateWindow{Start: start, End: end}
}

// SingleDayWindow creates a window covering exactly one calendar date.
func SingleDayWindow(t time.Time) DateWindow {
	d := Day(t)
	return DateWindow{Start: d, End: d}
}

// Overlaps reports whether two inclusive date windows share at least one day.
func (w DateWindow) Overlaps(other DateWindow) bool {
	return !(w.End.Before(other.Start) || other.End.Before(w.Start))
}

// Day truncates a timestamp to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
