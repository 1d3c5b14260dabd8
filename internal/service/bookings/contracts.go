package bookings

import (
	"context"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
)

// BookingRepository is the read access the ledger service needs. All writes
// go through the reservation use cases.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
