package get_availability

import (
	"context"
	"fmt"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
)

// UseCase projects the availability of a service over a date range.
// Read-only: the reservation path does its own point lookups to keep the
// critical section minimal.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase creates a new availability projection use case.
func NewUseCase(availabilityRepo AvailabilityRepository, logger Logger) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Execute returns the slots of the inclusive day range covering [From, To],
// ordered by date then start time. An unknown service simply has no slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%s, range=%s..%s",
		req.ServiceID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	slots, err := uc.availabilityRepo.ListByServiceAndDateRange(ctx, req.ServiceID, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	result := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		result = append(result, Slot{
			ID:        slot.ID,
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsBooked:  slot.IsBooked,
		})
	}

	uc.logger.Info("GetAvailability: service=%s, %d slots", req.ServiceID, len(result))

	return &Response{
		ServiceID: req.ServiceID,
		Slots:     result,
	}, nil
}

func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	return nil
}
