package domain

import (
	"time"

	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents one reservation in the system. The engine creates
// bookings as pending and cancels them; confirmation and completion are
// driven by external business processes.
type Booking struct {
	ID        string
	UserID    string
	ServiceID string
	SlotID    *string // nil for plan-based bookings without a time slot
	Status    BookingStatus
	Notes     *string

	// Snapshots taken at creation time, immune to later catalog changes.
	TotalPrice      float64
	ServiceName     string
	DurationMinutes int

	// Denormalized slot data, joined on reads when a slot is referenced.
	SlotDate      *time.Time
	SlotStartTime *types.TimeString
	SlotEndTime   *types.TimeString

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the booking still claims its slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled reports whether the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled reports whether a cancel transition is allowed.
// Completed bookings are terminal.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal reports whether no further transition may leave this status.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}
