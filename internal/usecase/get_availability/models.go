package get_availability

import (
	"time"

	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

// Request asks for the slots of one service over a date range.
type Request struct {
	ServiceID string
	From      time.Time
	To        time.Time
}

// Response lists the slots, booked ones included, so callers can render a
// full calendar.
type Response struct {
	ServiceID string
	Slots     []Slot
}

// Slot is one availability projection entry.
type Slot struct {
	ID        string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBooked  bool
}
