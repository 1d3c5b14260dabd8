package generate_slots

import (
	"context"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
)

// AvailabilityRepository is the slot persistence the generator needs.
type AvailabilityRepository interface {
	BulkInsert(ctx context.Context, slots []*domain.AvailabilitySlot) (int64, error)
}

// CatalogRepository resolves the service the slots belong to.
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
