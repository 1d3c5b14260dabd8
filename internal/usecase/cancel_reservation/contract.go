package cancel_reservation

import (
	"context"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
)

// BookingRepository is the booking access the coordinator needs. GetByID
// locks the row when called inside a transaction.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
}

// AvailabilityRepository frees the slot a cancelled booking held.
type AvailabilityRepository interface {
	SetBooked(ctx context.Context, id string, booked bool) error
}

// TransactionManager runs the cancellation's atomic unit.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
