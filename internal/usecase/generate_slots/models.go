package generate_slots

import (
	"time"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
)

// Request describes one bulk generation call.
type Request struct {
	ServiceID           string
	StartDate           time.Time           // first day, inclusive
	EndDate             time.Time           // last day, inclusive
	WorkingHours        domain.WorkingHours // daily window the slots fill
	SlotDurationMinutes int
}

// Response reports the outcome of a generation call. Regenerating an
// overlapping range is legal, so Created may be smaller than Requested.
type Response struct {
	ServiceID string
	Requested int   // slots computed for the range
	Created   int64 // slots actually written (duplicates skipped)
}
