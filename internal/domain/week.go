package domain

import "time"

// Weeks are Monday through Sunday. time.Weekday numbers Sunday as 0, so a
// Sunday belongs to the week that started six days earlier.

// WeekStart returns the Monday of the week containing date, truncated to
// midnight in date's location.
func WeekStart(date time.Time) time.Time {
	day := startOfDay(date)

	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += DaysPerWeek // Sunday
	}

	return day.AddDate(0, 0, -offset)
}

// NextWeek returns the Monday of the week after the one containing date.
func NextWeek(date time.Time) time.Time {
	return WeekStart(date).AddDate(0, 0, DaysPerWeek)
}

// PrevWeek returns the Monday of the week before the one containing date.
func PrevWeek(date time.Time) time.Time {
	return WeekStart(date).AddDate(0, 0, -DaysPerWeek)
}

// WeekDates returns the seven consecutive dates of the week containing date,
// starting from its Monday.
func WeekDates(date time.Time) []time.Time {
	start := WeekStart(date)

	dates := make([]time.Time, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// IsWeekWindow reports whether dates is exactly seven consecutive ascending
// calendar dates.
func IsWeekWindow(dates []time.Time) bool {
	if len(dates) != DaysPerWeek {
		return false
	}

	for i := 1; i < len(dates); i++ {
		if !SameDate(dates[i], dates[i-1].AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
