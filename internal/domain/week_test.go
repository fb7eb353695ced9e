package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "monday maps to itself", in: date(2026, time.March, 2), want: date(2026, time.March, 2)},
		{name: "wednesday maps to preceding monday", in: date(2026, time.March, 4), want: date(2026, time.March, 2)},
		{name: "saturday maps to preceding monday", in: date(2026, time.March, 7), want: date(2026, time.March, 2)},
		{name: "sunday belongs to the week started six days earlier", in: date(2026, time.March, 8), want: date(2026, time.March, 2)},
		{name: "time of day is dropped", in: time.Date(2026, time.March, 4, 18, 45, 12, 0, time.UTC), want: date(2026, time.March, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestNextPrevWeek(t *testing.T) {
	wednesday := date(2026, time.March, 4)

	assert.Equal(t, date(2026, time.March, 9), NextWeek(wednesday))
	assert.Equal(t, date(2026, time.February, 23), PrevWeek(wednesday))
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(date(2026, time.March, 8)) // a Sunday

	require.Len(t, dates, DaysPerWeek)
	assert.Equal(t, date(2026, time.March, 2), dates[0])
	assert.Equal(t, date(2026, time.March, 8), dates[6])
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.True(t, IsWeekWindow(dates))
}

func TestIsWeekWindow(t *testing.T) {
	valid := WeekDates(date(2026, time.March, 2))
	assert.True(t, IsWeekWindow(valid))

	assert.False(t, IsWeekWindow(valid[:6]))

	gap := append([]time.Time{}, valid...)
	gap[3] = gap[3].AddDate(0, 0, 1)
	assert.False(t, IsWeekWindow(gap))

	descending := []time.Time{
		valid[6], valid[5], valid[4], valid[3], valid[2], valid[1], valid[0],
	}
	assert.False(t, IsWeekWindow(descending))
}

func TestSlotTimes(t *testing.T) {
	slots := SlotTimes()

	require.Len(t, slots, SlotCount)
	assert.Equal(t, "10:00", slots[0].String())
	assert.Equal(t, "21:00", slots[len(slots)-1].String())

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
}
