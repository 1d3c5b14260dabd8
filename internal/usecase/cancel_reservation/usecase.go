package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/booking"
)

// Request identifies the booking and the user asking to cancel it.
type Request struct {
	BookingID string
	UserID    string
}

// UseCase cancels a reservation: the ownership check, the status change and
// the freeing of the slot run in one serializable transaction.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase creates a new cancellation use case.
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute cancels the booking. Cancelling an already-cancelled booking is a
// no-op success so retried client requests stay idempotent.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelReservation: booking=%s, user=%s", req.BookingID, req.UserID)

	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Lock the booking row: ownership check and mutation must not
		// interleave with a concurrent cancel of the same booking.
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelReservation: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelReservation: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			uc.logger.Warn("CancelReservation: user=%s does not own booking id=%s",
				req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		// Idempotent repeat cancellation.
		if booking.IsCancelled() {
			uc.logger.Info("CancelReservation: booking id=%s already cancelled", req.BookingID)
			return nil
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelReservation: booking id=%s in terminal status %s",
				req.BookingID, booking.Status)
			return ErrCannotCancel
		}

		if err := uc.bookingRepo.Cancel(txCtx, req.BookingID); err != nil {
			uc.logger.Error("CancelReservation: failed to cancel booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		// Release the slot so it becomes bookable again.
		if booking.SlotID != nil {
			if err := uc.availabilityRepo.SetBooked(txCtx, *booking.SlotID, false); err != nil {
				uc.logger.Error("CancelReservation: failed to free slot id=%s: %v", *booking.SlotID, err)
				return fmt.Errorf("%w: failed to free slot: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelReservation: booking id=%s cancelled by user=%s", req.BookingID, req.UserID)
	return nil
}
