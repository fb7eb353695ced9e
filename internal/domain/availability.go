package domain

import (
	"fmt"
	"time"

	"github.com/lengolf/LG-CoachingService/pkg/types"
)

// SlotStatus is the resolved availability state of one grid cell. Consumers
// must treat it as an opaque enumerated tag and never re-derive it.
type SlotStatus string

const (
	SlotAvailable           SlotStatus = "available"
	SlotUnavailable         SlotStatus = "unavailable"
	SlotBlocked             SlotStatus = "blocked"
	SlotOverrideUnavailable SlotStatus = "override-unavailable"
	SlotOverrideAvailable   SlotStatus = "override-available"
)

// TimeSlot is one resolved cell of the availability grid.
type TimeSlot struct {
	Time   types.TimeString
	Status SlotStatus
	Title  *string // carried from the block/override that produced the status
}

// DayAvailability is the resolved grid row for one calendar date:
// exactly SlotCount slots in ascending time order.
type DayAvailability struct {
	Date      time.Time
	DayOfWeek int
	IsToday   bool
	TimeSlots []TimeSlot
}

// SlotTimes returns the fixed hourly slot labels of the coaching grid
// (10:00 through 21:00) in ascending order.
func SlotTimes() []types.TimeString {
	slots := make([]types.TimeString, SlotCount)
	for i := 0; i < SlotCount; i++ {
		slots[i] = types.TimeString(fmt.Sprintf("%02d:00", FirstSlotHour+i))
	}
	return slots
}
