package create_reservation

import (
	"context"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
)

// AvailabilityRepository is the slot access the coordinator needs. GetByID
// locks the row when called inside a transaction.
type AvailabilityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error)
	SetBooked(ctx context.Context, id string, booked bool) error
}

// BookingRepository writes the booking record.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogRepository resolves the service for the price snapshot.
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// TransactionManager runs the reservation's atomic unit.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
