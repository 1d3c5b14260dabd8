package generate_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the target service does not exist.
	ErrServiceNotFound = errors.New("generate_slots: service not found")

	// ErrInvalidWorkingHours is returned for malformed working hours or a
	// window whose end does not come after its start. Reported before any
	// slot is written.
	ErrInvalidWorkingHours = errors.New("generate_slots: invalid working hours")

	// ErrInvalidInput is returned for invalid request data.
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal is returned for internal use case failures.
	ErrInternal = errors.New("generate_slots: internal error")
)
