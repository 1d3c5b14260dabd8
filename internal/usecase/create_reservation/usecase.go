package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	availabilityRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/availability"
	catalogRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/catalog"
)

// UseCase reserves an availability slot for a user. The occupied check, the
// flag flip and the booking insert form one serializable transaction, so at
// most one of any set of racing reservations for a slot can succeed.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	catalogRepo      CatalogRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase creates a new reservation use case.
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		catalogRepo:      catalogRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute performs the reservation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, service=%s, slot=%s",
		req.UserID, req.ServiceID, req.SlotID)

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Load the service for the price snapshot. Catalog rows are
	// immutable inputs here, so this read can stay outside the critical
	// section.
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var (
		result *domain.Booking
		slot   *domain.AvailabilitySlot
	)

	// 3. The atomic unit: lock the slot row, check the occupied flag, flip
	// it and insert the booking. Either all of it commits or none does.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Point lookup with FOR UPDATE: racing reservations for the
		// same slot serialize here, the loser observes is_booked=true.
		locked, err := uc.availabilityRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateReservation: slot id=%s not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateReservation: failed to get slot id=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if locked.IsBooked {
			uc.logger.Warn("CreateReservation: slot id=%s already booked", req.SlotID)
			return ErrSlotNotAvailable
		}

		// 3.2. Claim the slot.
		if err := uc.availabilityRepo.SetBooked(txCtx, req.SlotID, true); err != nil {
			uc.logger.Error("CreateReservation: failed to mark slot id=%s booked: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		// 3.3. Write the booking with the price snapshot. Later catalog
		// price changes never touch this row.
		booking := &domain.Booking{
			ID:              uuid.NewString(),
			UserID:          req.UserID,
			ServiceID:       req.ServiceID,
			SlotID:          &req.SlotID,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
			TotalPrice:      service.Price,
			ServiceName:     service.Name,
			DurationMinutes: service.DurationMinutes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		slot = locked
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: booking id=%s created for user=%s, slot=%s",
		result.ID, req.UserID, req.SlotID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ServiceID:       result.ServiceID,
		SlotID:          req.SlotID,
		Status:          string(result.Status),
		Notes:           result.Notes,
		TotalPrice:      result.TotalPrice,
		ServiceName:     result.ServiceName,
		DurationMinutes: result.DurationMinutes,
		SlotDate:        slot.Date,
		SlotStartTime:   slot.StartTime,
		SlotEndTime:     slot.EndTime,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
