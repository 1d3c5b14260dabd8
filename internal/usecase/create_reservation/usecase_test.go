package create_reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	availabilityRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/availability"
	catalogRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/catalog"
	"github.com/thetrinh16698/tufting-booking/pkg/ptr"
	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

type fakeAvailabilityRepo struct {
	slot      *domain.AvailabilitySlot
	getErr    error
	setErr    error
	bookedIDs map[string]bool
}

func (f *fakeAvailabilityRepo) GetByID(_ context.Context, _ string) (*domain.AvailabilitySlot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.slot, nil
}

func (f *fakeAvailabilityRepo) SetBooked(_ context.Context, id string, booked bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.bookedIDs == nil {
		f.bookedIDs = make(map[string]bool)
	}
	f.bookedIDs[id] = booked
	return nil
}

type fakeBookingRepo struct {
	created *domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *booking
	created.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, _ string) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

// fakeTxManager runs the unit directly; atomicity is the real manager's job.
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testService() *domain.Service {
	return &domain.Service{
		ID:              "svc-1",
		Name:            "Beginner Tufting Session",
		Price:           75.00,
		DurationMinutes: 120,
	}
}

func testSlot() *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{
		ID:        "slot-1",
		ServiceID: "svc-1",
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("12:00"),
		IsBooked:  false,
	}
}

func newTestUseCase(availability *fakeAvailabilityRepo, booking *fakeBookingRepo, catalog *fakeCatalogRepo) *UseCase {
	return NewUseCase(availability, booking, catalog, fakeTxManager{}, nopLogger{})
}

func TestCreateReservation_Success(t *testing.T) {
	availability := &fakeAvailabilityRepo{slot: testSlot()}
	booking := &fakeBookingRepo{}
	catalog := &fakeCatalogRepo{service: testService()}
	uc := newTestUseCase(availability, booking, catalog)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    "user-1",
		ServiceID: "svc-1",
		SlotID:    "slot-1",
		Notes:     ptr.Ptr("first rug"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "slot-1", resp.SlotID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Price and service data are snapshotted onto the booking.
	assert.Equal(t, 75.00, resp.TotalPrice)
	assert.Equal(t, "Beginner Tufting Session", resp.ServiceName)
	assert.Equal(t, 120, resp.DurationMinutes)

	assert.Equal(t, types.TimeString("10:00"), resp.SlotStartTime)
	assert.Equal(t, types.TimeString("12:00"), resp.SlotEndTime)

	assert.True(t, availability.bookedIDs["slot-1"])
	require.NotNil(t, booking.created)
	require.NotNil(t, booking.created.SlotID)
	assert.Equal(t, "slot-1", *booking.created.SlotID)
}

func TestCreateReservation_ServiceNotFound(t *testing.T) {
	availability := &fakeAvailabilityRepo{slot: testSlot()}
	booking := &fakeBookingRepo{}
	catalog := &fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound}
	uc := newTestUseCase(availability, booking, catalog)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", ServiceID: "missing", SlotID: "slot-1",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Nil(t, booking.created)
}

func TestCreateReservation_SlotNotFound(t *testing.T) {
	availability := &fakeAvailabilityRepo{getErr: availabilityRepo.ErrSlotNotFound}
	booking := &fakeBookingRepo{}
	catalog := &fakeCatalogRepo{service: testService()}
	uc := newTestUseCase(availability, booking, catalog)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", ServiceID: "svc-1", SlotID: "missing",
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Nil(t, booking.created)
}

func TestCreateReservation_SlotAlreadyBooked(t *testing.T) {
	slot := testSlot()
	slot.IsBooked = true
	availability := &fakeAvailabilityRepo{slot: slot}
	booking := &fakeBookingRepo{}
	catalog := &fakeCatalogRepo{service: testService()}
	uc := newTestUseCase(availability, booking, catalog)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", ServiceID: "svc-1", SlotID: "slot-1",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, booking.created)
	assert.Empty(t, availability.bookedIDs)
}

func TestCreateReservation_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing user", req: &Request{ServiceID: "svc-1", SlotID: "slot-1"}},
		{name: "missing service", req: &Request{UserID: "user-1", SlotID: "slot-1"}},
		{name: "missing slot", req: &Request{UserID: "user-1", ServiceID: "svc-1"}},
		{name: "notes too long", req: &Request{
			UserID: "user-1", ServiceID: "svc-1", SlotID: "slot-1",
			Notes: ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			availability := &fakeAvailabilityRepo{slot: testSlot()}
			booking := &fakeBookingRepo{}
			catalog := &fakeCatalogRepo{service: testService()}
			uc := newTestUseCase(availability, booking, catalog)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, booking.created)
		})
	}
}
