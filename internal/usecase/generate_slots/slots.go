package generate_slots

import (
	"time"

	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

// daySlot is one computed interval before it is bound to a service and day.
type daySlot struct {
	Start types.TimeString
	End   types.TimeString
}

// buildDaySlots walks from the window start in fixed increments of the slot
// duration and emits every [t, t+duration) that still fits the window.
// A trailing slot that would overrun the closing time is dropped, not
// truncated. The window is assumed validated: start and end are well-formed
// and end is strictly after start, so the walk never wraps past midnight.
func buildDaySlots(open, close types.TimeString, durationMinutes int) ([]daySlot, error) {
	slots := make([]daySlot, 0)

	current := open
	for current.IsBefore(close) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Next slot would cross midnight; nothing more fits today.
			break
		}
		if end.IsAfter(close) {
			break
		}

		slots = append(slots, daySlot{Start: current, End: end})
		current = end
	}

	return slots, nil
}

// daysInRange expands the inclusive [start, end] date range into day-start
// timestamps.
func daysInRange(start, end time.Time) []time.Time {
	days := make([]time.Time, 0)

	current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	for !current.After(last) {
		days = append(days, current)
		current = current.AddDate(0, 0, 1)
	}

	return days
}
