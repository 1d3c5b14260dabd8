package create_reservation

import "errors"

var (
	// ErrServiceNotFound is returned when the referenced service does not
	// exist; the price snapshot cannot be taken without it.
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrSlotNotFound is returned when the referenced slot does not exist.
	ErrSlotNotFound = errors.New("create_reservation: slot not found")

	// ErrSlotNotAvailable is returned when the slot is already occupied.
	// Callers may re-query availability and pick another slot.
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput is returned for invalid request data.
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned for internal use case failures.
	ErrInternal = errors.New("create_reservation: internal error")
)
