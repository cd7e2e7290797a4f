package stats

import (
	"time"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/calendar"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
)

// TotalForDay sums the minutes of every chunk billed to the given date.
// Zero when nothing matches.
func TotalForDay(chunks []*model.Chunk, date time.Time) int {
	day := calendar.DateOf(date)
	total := 0
	for _, c := range chunks {
		if calendar.DateOf(c.Date).Equal(day) {
			total += c.Minutes
		}
	}
	return total
}

// TotalForRange sums the minutes of every chunk whose date lies in
// [start, end], both ends inclusive. An inverted range sums to zero.
func TotalForRange(chunks []*model.Chunk, start, end time.Time) int {
	from, to := calendar.DateOf(start), calendar.DateOf(end)
	total := 0
	for _, c := range chunks {
		d := calendar.DateOf(c.Date)
		if !d.Before(from) && !d.After(to) {
			total += c.Minutes
		}
	}
	return total
}

// RequiredMinutes is the quota for a range: the daily goal times the number
// of workdays (Mon–Fri) in it. Weekend work never raises the requirement,
// so minutes logged on a Saturday or Sunday can push billed past required.
func RequiredMinutes(start, end time.Time, dailyGoal int) int {
	return dailyGoal * len(calendar.WeekdaysInRange(start, end))
}

// BuildDayIndex groups chunks by calendar date, preserving list order within
// each day. The index is a read cache over the loaded collection: it is
// rebuilt from scratch after every load and never patched incrementally.
func BuildDayIndex(chunks []*model.Chunk) map[time.Time]*model.Day {
	days := make(map[time.Time]*model.Day)
	for _, c := range chunks {
		d := calendar.DateOf(c.Date)
		day, ok := days[d]
		if !ok {
			day = &model.Day{Date: d}
			days[d] = day
		}
		day.Chunks = append(day.Chunks, c)
	}
	return days
}
