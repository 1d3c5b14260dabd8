package cancel_reservation

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("cancel_reservation: booking not found")

	// ErrAccessDenied is returned when the requesting user does not own the
	// booking. Only the creating user may cancel it.
	ErrAccessDenied = errors.New("cancel_reservation: access denied")

	// ErrCannotCancel is returned for terminal non-cancelled bookings
	// (completed ones); no transition leaves a terminal status.
	ErrCannotCancel = errors.New("cancel_reservation: booking cannot be cancelled")

	// ErrInvalidInput is returned for invalid request data.
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal is returned for internal use case failures.
	ErrInternal = errors.New("cancel_reservation: internal error")
)
