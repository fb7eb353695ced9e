package domain

import (
	"time"

	"github.com/lengolf/LG-CoachingService/pkg/types"
)

// WeeklyScheduleRule represents a coach's default recurring availability for
// one day of the week. The rule has no end date: it applies to every week
// until it is changed or deleted by staff.
type WeeklyScheduleRule struct {
	ID          int64
	CoachID     int64
	DayOfWeek   int // 0 = Sunday ... 6 = Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecurringBlock represents a standing weekly unavailable period (e.g. a
// weekly staff meeting) that blocks time regardless of the base schedule.
type RecurringBlock struct {
	ID        int64
	CoachID   int64
	Title     string
	DayOfWeek int // 0 = Sunday ... 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OverrideType classifies a date override.
type OverrideType string

const (
	// OverrideUnavailable marks a time range on a specific date as unavailable.
	OverrideUnavailable OverrideType = "unavailable"

	// OverrideAvailable marks a time range on a specific date as available,
	// superseding the weekly schedule and any recurring blocks.
	OverrideAvailable OverrideType = "available"

	// OverrideCustom carries only a whole-day display title and does not
	// affect per-slot status.
	OverrideCustom OverrideType = "custom"
)

// IsValid returns true if the override type is one of the known values.
func (t OverrideType) IsValid() bool {
	return t == OverrideUnavailable || t == OverrideAvailable || t == OverrideCustom
}

// RequiresTimeRange returns true if overrides of this type must carry a
// start and end time.
func (t OverrideType) RequiresTimeRange() bool {
	return t == OverrideUnavailable || t == OverrideAvailable
}

// DateOverride represents a one-off exception tied to a specific calendar
// date. It takes precedence over the weekly schedule and recurring blocks
// for the overlapping time range. Overrides are never auto-deleted; past
// dates simply stop mattering.
type DateOverride struct {
	ID           int64
	CoachID      int64
	OverrideDate time.Time // date only, time part ignored
	StartTime    *types.TimeString
	EndTime      *types.TimeString
	OverrideType OverrideType
	Title        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTimeRange returns true if the override carries both a start and an end time.
func (o *DateOverride) HasTimeRange() bool {
	return o.StartTime != nil && o.EndTime != nil
}

// AppliesTo returns true if the override is for the given calendar date.
func (o *DateOverride) AppliesTo(date time.Time) bool {
	return SameDate(o.OverrideDate, date)
}

// OverrideDateRange inclusive date range used when loading overrides.
type OverrideDateRange struct {
	From time.Time
	To   time.Time
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
