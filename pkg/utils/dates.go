package utils

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// WeekDates returns the calendar start and end of a plan week.
// Week 1 starts on the plan start date; the end is the last instant of
// the seventh day.
func WeekDates(startDate time.Time, weekNumber int) (time.Time, time.Time) {
	start := StartOfDay(startDate).AddDate(0, 0, (weekNumber-1)*7)
	end := start.AddDate(0, 0, 6).Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// CurrentWeekNumber computes the plan week that contains today, clamped
// to [1, 12].
func CurrentWeekNumber(startDate, today time.Time) int {
	days := int(StartOfDay(today).Sub(StartOfDay(startDate)).Hours() / 24)
	week := days/7 + 1
	if week < 1 {
		return 1
	}
	if week > 12 {
		return 12
	}
	return week
}

// DaysUntil returns whole days from today until the goal date, never
// negative.
func DaysUntil(goalDate, today time.Time) int {
	diff := StartOfDay(goalDate).Sub(StartOfDay(today))
	days := int(diff.Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// MondayOf returns the Monday of the week containing t.
func MondayOf(t time.Time) time.Time {
	d := StartOfDay(t)
	offset := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		offset = 6
	}
	return d.AddDate(0, 0, -offset)
}
