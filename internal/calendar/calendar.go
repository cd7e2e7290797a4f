package calendar

import "time"

// DateOf normalizes t to its calendar date: midnight UTC of the same
// year/month/day. All range arithmetic and map keys in the core work on
// these normalized dates.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekRange returns the Monday and Sunday of the ISO week containing d,
// both inclusive.
func WeekRange(d time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := DateOf(d).AddDate(0, 0, -(wd - 1))
	return monday, monday.AddDate(0, 0, 6)
}

// MonthRange returns the first and last calendar day of the month
// containing d. The last day comes from date arithmetic, so leap years and
// varying month lengths need no table.
func MonthRange(d time.Time) (time.Time, time.Time) {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// WeekdaysInRange returns every Monday–Friday date in [start, end],
// inclusive of both ends, in calendar order. An inverted range yields an
// empty sequence, not an error.
func WeekdaysInRange(start, end time.Time) []time.Time {
	var days []time.Time
	for d := DateOf(start); !d.After(DateOf(end)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, d)
		}
	}
	return days
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
