package domain

// Coaching slot grid constants.
// The venue displays coach availability as a fixed hourly grid from 10:00
// to 21:00 inclusive (12 one-hour slots), seven days per row, Monday first.
const (
	FirstSlotHour = 10
	SlotCount     = 12

	DaysPerWeek = 7

	SlotDurationMinutes = 60
)

// Business validation constants
const (
	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday

	MaxTitleLength = 200

	DefaultScheduleRangeDays = 90
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
