// Package week implements the Monday-first calendar arithmetic behind the
// weekly task board.
package week

import "time"

// DayIndex converts t's weekday to the Monday=0 .. Sunday=6 convention used
// for bucket assignment (time.Weekday is natively Sunday=0).
func DayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}

// Start returns the Monday on or before t, at 00:00:00 in t's location.
func Start(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d.AddDate(0, 0, -DayIndex(d))
}

// Window returns the 7-day span covering anchor: start is the Monday on or
// before anchor at 00:00:00, end is the following Sunday at 23:59:59.999 so
// that same-day comparisons against end stay inclusive. End is built from
// calendar fields, not by adding a duration: on a DST-shortened Sunday a
// physical 23h59m would spill past midnight into Monday.
func Window(anchor time.Time) (start, end time.Time) {
	start = Start(anchor)
	e := start.AddDate(0, 0, 6)
	end = time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, 999*1e6, e.Location())
	return start, end
}
