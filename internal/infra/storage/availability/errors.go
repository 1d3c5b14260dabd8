package availability

import "errors"

var (
	// ErrSlotNotFound is returned when no slot exists with the given id.
	ErrSlotNotFound = errors.New("availability.repository: slot not found")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
