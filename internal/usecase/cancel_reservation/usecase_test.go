package cancel_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	bookingRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/booking"
	"github.com/thetrinh16698/tufting-booking/pkg/ptr"
)

type fakeBookingRepo struct {
	booking      *domain.Booking
	getErr       error
	cancelErr    error
	cancelledIDs []string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledIDs = append(f.cancelledIDs, id)
	return nil
}

type fakeAvailabilityRepo struct {
	freedIDs []string
	err      error
}

func (f *fakeAvailabilityRepo) SetBooked(_ context.Context, id string, booked bool) error {
	if f.err != nil {
		return f.err
	}
	if !booked {
		f.freedIDs = append(f.freedIDs, id)
	}
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        "booking-1",
		UserID:    "user-1",
		ServiceID: "svc-1",
		SlotID:    ptr.Ptr("slot-1"),
		Status:    domain.StatusPending,
	}
}

func TestCancelReservation_Success(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	availability := &fakeAvailabilityRepo{}
	uc := NewUseCase(bookings, availability, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: "booking-1", UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"booking-1"}, bookings.cancelledIDs)
	assert.Equal(t, []string{"slot-1"}, availability.freedIDs)
}

func TestCancelReservation_ConfirmedIsCancellable(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	bookings := &fakeBookingRepo{booking: booking}
	availability := &fakeAvailabilityRepo{}
	uc := NewUseCase(bookings, availability, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: "booking-1", UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"booking-1"}, bookings.cancelledIDs)
}

func TestCancelReservation_WithoutSlot(t *testing.T) {
	booking := pendingBooking()
	booking.SlotID = nil
	bookings := &fakeBookingRepo{booking: booking}
	availability := &fakeAvailabilityRepo{}
	uc := NewUseCase(bookings, availability, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: "booking-1", UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"booking-1"}, bookings.cancelledIDs)
	assert.Empty(t, availability.freedIDs)
}

func TestCancelReservation_NotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	availability := &fakeAvailabilityRepo{}
	uc := NewUseCase(bookings, availability, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: "missing", UserID: "user-1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelReservation_AccessDenied(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	availability := &fakeAvailabilityRepo{}
	uc := NewUseCase(bookings, availability, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: "booking-1", UserID: "someone-else"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// The booking and its slot stay untouched.
	assert.Empty(t, bookings.cancelledIDs)
	assert.Empty(t, availability.freedIDs)
}

func TestCancelReservation_RepeatCancelIsNoOp(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelled
	booking.CancelledAt = ptr.Ptr(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	bookings := &fakeBookingRepo{booking: booking}
	availability := &fakeAvailabilityRepo{}
	uc := NewUseCase(bookings, availability, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: "booking-1", UserID: "user-1"})
	require.NoError(t, err)

	// No second write, no double release of the slot.
	assert.Empty(t, bookings.cancelledIDs)
	assert.Empty(t, availability.freedIDs)
}

func TestCancelReservation_CompletedCannotBeCancelled(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCompleted
	bookings := &fakeBookingRepo{booking: booking}
	availability := &fakeAvailabilityRepo{}
	uc := NewUseCase(bookings, availability, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: "booking-1", UserID: "user-1"})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, bookings.cancelledIDs)
	assert.Empty(t, availability.freedIDs)
}

func TestCancelReservation_InvalidInput(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	availability := &fakeAvailabilityRepo{}
	uc := NewUseCase(bookings, availability, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: "", UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = uc.Execute(context.Background(), &Request{BookingID: "booking-1", UserID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
