package get_availability

import (
	"context"
	"time"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
)

// AvailabilityRepository is the read access the projection needs.
type AvailabilityRepository interface {
	ListByServiceAndDateRange(ctx context.Context, serviceID string, from, to time.Time) ([]*domain.AvailabilitySlot, error)
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
