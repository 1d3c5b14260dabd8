package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInternal is returned for internal service failures.
	ErrInternal = errors.New("bookings: internal error")
)
