package create_reservation

import (
	"time"

	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

// Request describes one reservation attempt.
type Request struct {
	UserID    string  // authenticated user id, opaque to the engine
	ServiceID string  // catalog service being booked
	SlotID    string  // availability slot being claimed
	Notes     *string // optional free-text notes
}

// Response carries the created booking with the denormalized service and
// slot data callers need for display.
type Response struct {
	ID        string
	UserID    string
	ServiceID string
	SlotID    string
	Status    string
	Notes     *string

	TotalPrice      float64
	ServiceName     string
	DurationMinutes int

	SlotDate      time.Time
	SlotStartTime types.TimeString
	SlotEndTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}
