package domain

import "time"

// DayBounds widens an inclusive calendar-date range to instant bounds in the
// given location: from at 00:00:00 through to at 23:59:59.999999999. Using
// the local calendar day, not UTC, keeps entries dated exactly on a boundary
// inside the range.
func DayBounds(from, to time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	return start, end
}
