package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	catalogRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/catalog"
)

// UseCase bulk-generates availability slots for a service over a date range.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	catalogRepo      CatalogRepository
	logger           Logger
}

// NewUseCase creates a new slot generation use case.
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		catalogRepo:      catalogRepo,
		logger:           logger,
	}
}

// Execute expands the working-hours window into slots for every day of the
// inclusive range and persists them idempotently. Days are written
// independently: a failure on a later day leaves earlier days in place,
// which is safe because every slot insert is a no-op when it already exists.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: service=%s, range=%s..%s, window=%s-%s, duration=%dmin",
		req.ServiceID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.WorkingHours.Start, req.WorkingHours.End, req.SlotDurationMinutes)

	// 1. Validate the configuration before touching the store.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. The service must exist; slots belong to exactly one service.
	if _, err := uc.catalogRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GenerateSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Compute the per-day interval walk once; it is identical every day.
	intervals, err := buildDaySlots(req.WorkingHours.Start, req.WorkingHours.End, req.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to build day slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build day slots: %v", ErrInternal, err)
	}

	days := daysInRange(req.StartDate, req.EndDate)

	var (
		requested int
		created   int64
	)

	// 4. Persist day by day. No transaction spans the days: slots are
	// independently idempotent and partial progress must survive a failure.
	for _, day := range days {
		slots := make([]*domain.AvailabilitySlot, 0, len(intervals))
		for _, interval := range intervals {
			slots = append(slots, &domain.AvailabilitySlot{
				ID:        uuid.NewString(),
				ServiceID: req.ServiceID,
				Date:      day,
				StartTime: interval.Start,
				EndTime:   interval.End,
				IsBooked:  false,
			})
		}

		requested += len(slots)

		inserted, err := uc.availabilityRepo.BulkInsert(ctx, slots)
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to insert slots for %s: %v",
				day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to insert slots for %s: %v",
				ErrInternal, day.Format(domain.DateFormat), err)
		}

		created += inserted
	}

	uc.logger.Info("GenerateSlots: service=%s, requested=%d, created=%d",
		req.ServiceID, requested, created)

	return &Response{
		ServiceID: req.ServiceID,
		Requested: requested,
		Created:   created,
	}, nil
}
