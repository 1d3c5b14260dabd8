package domain

import (
	"time"

	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

// AvailabilitySlot is a discrete bookable time interval on a given day for
// one service. Slots are created in bulk by the generator and only ever
// mutated by flipping the occupied flag.
type AvailabilitySlot struct {
	ID        string
	ServiceID string
	Date      time.Time // day granularity, wall-clock
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBooked  bool
	CreatedAt time.Time
}

// WorkingHours is the daily window the generator expands into slots.
type WorkingHours struct {
	Start types.TimeString
	End   types.TimeString
}
