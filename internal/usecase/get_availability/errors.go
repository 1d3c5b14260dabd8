package get_availability

import "errors"

var (
	// ErrInvalidInput is returned for invalid request data.
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal is returned for internal use case failures.
	ErrInternal = errors.New("get_availability: internal error")
)
