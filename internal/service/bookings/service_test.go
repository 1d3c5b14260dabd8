package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	bookingRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/booking"
	"github.com/thetrinh16698/tufting-booking/pkg/ptr"
	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ string) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id string) *domain.Booking {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:              id,
		UserID:          "user-1",
		ServiceID:       "svc-1",
		SlotID:          ptr.Ptr("slot-1"),
		Status:          domain.StatusPending,
		TotalPrice:      75.00,
		ServiceName:     "Beginner Tufting Session",
		DurationMinutes: 120,
		SlotDate:        ptr.Ptr(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)),
		SlotStartTime:   ptr.Ptr(types.TimeString("10:00")),
		SlotEndTime:     ptr.Ptr(types.TimeString("12:00")),
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func TestGetByID_Success(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: testBooking("booking-1")}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 75.00, resp.TotalPrice)

	require.NotNil(t, resp.SlotDate)
	assert.Equal(t, "2024-06-02", *resp.SlotDate)
	require.NotNil(t, resp.SlotStartTime)
	assert.Equal(t, "10:00", *resp.SlotStartTime)
	assert.Equal(t, "2024-06-01T12:00:00Z", resp.CreatedAt)
	assert.Nil(t, resp.CancelledAt)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_RepositoryError(t *testing.T) {
	svc := NewService(&fakeBookingRepo{err: errors.New("connection reset")}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "booking-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetUserBookings_PreservesOrder(t *testing.T) {
	svc := NewService(&fakeBookingRepo{
		bookings: []*domain.Booking{testBooking("booking-2"), testBooking("booking-1")},
	}, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "booking-2", resp.Bookings[0].ID)
	assert.Equal(t, "booking-1", resp.Bookings[1].ID)
}

func TestGetUserBookings_Empty(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}
