package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	catalogRepo "github.com/thetrinh16698/tufting-booking/internal/infra/storage/catalog"
	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

type fakeAvailabilityRepo struct {
	inserted [][]*domain.AvailabilitySlot
	created  int64
	err      error
}

func (f *fakeAvailabilityRepo) BulkInsert(_ context.Context, slots []*domain.AvailabilitySlot) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.inserted = append(f.inserted, slots)
	if f.created > 0 {
		return f.created, nil
	}
	return int64(len(slots)), nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		ServiceID: "svc-1",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		WorkingHours: domain.WorkingHours{
			Start: types.TimeString("09:00"),
			End:   types.TimeString("11:00"),
		},
		SlotDurationMinutes: 60,
	}
}

func TestGenerateSlots_Success(t *testing.T) {
	availability := &fakeAvailabilityRepo{}
	catalog := &fakeCatalogRepo{service: &domain.Service{ID: "svc-1", Name: "Beginner Tufting Session"}}
	uc := NewUseCase(availability, catalog, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 3 days, 2 slots per day.
	assert.Equal(t, 6, resp.Requested)
	assert.Equal(t, int64(6), resp.Created)
	require.Len(t, availability.inserted, 3)

	first := availability.inserted[0]
	require.Len(t, first, 2)
	assert.Equal(t, "svc-1", first[0].ServiceID)
	assert.Equal(t, types.TimeString("09:00"), first[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), first[0].EndTime)
	assert.Equal(t, types.TimeString("10:00"), first[1].StartTime)
	assert.Equal(t, types.TimeString("11:00"), first[1].EndTime)
	assert.False(t, first[0].IsBooked)
	assert.NotEmpty(t, first[0].ID)
	assert.NotEqual(t, first[0].ID, first[1].ID)
}

func TestGenerateSlots_ReportsSkippedDuplicates(t *testing.T) {
	// The store counts only rows actually written; re-running a range
	// reports created < requested.
	availability := &fakeAvailabilityRepo{created: 1}
	catalog := &fakeCatalogRepo{service: &domain.Service{ID: "svc-1"}}
	uc := NewUseCase(availability, catalog, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Requested)
	assert.Equal(t, int64(3), resp.Created)
}

func TestGenerateSlots_ServiceNotFound(t *testing.T) {
	availability := &fakeAvailabilityRepo{}
	catalog := &fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound}
	uc := NewUseCase(availability, catalog, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, availability.inserted)
}

func TestGenerateSlots_InvalidWorkingHours(t *testing.T) {
	tests := []struct {
		name  string
		hours domain.WorkingHours
	}{
		{name: "end before start", hours: domain.WorkingHours{Start: "17:00", End: "09:00"}},
		{name: "end equals start", hours: domain.WorkingHours{Start: "09:00", End: "09:00"}},
		{name: "malformed start", hours: domain.WorkingHours{Start: "9am", End: "17:00"}},
		{name: "malformed end", hours: domain.WorkingHours{Start: "09:00", End: "25:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			availability := &fakeAvailabilityRepo{}
			catalog := &fakeCatalogRepo{service: &domain.Service{ID: "svc-1"}}
			uc := NewUseCase(availability, catalog, nopLogger{})

			req := validRequest()
			req.WorkingHours = tt.hours

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidWorkingHours)
			assert.Empty(t, availability.inserted)
		})
	}
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing service id", mutate: func(r *Request) { r.ServiceID = "" }},
		{name: "end before start date", mutate: func(r *Request) {
			r.EndDate = r.StartDate.AddDate(0, 0, -1)
		}},
		{name: "range too long", mutate: func(r *Request) {
			r.EndDate = r.StartDate.AddDate(2, 0, 0)
		}},
		{name: "duration too short", mutate: func(r *Request) { r.SlotDurationMinutes = 1 }},
		{name: "duration too long", mutate: func(r *Request) { r.SlotDurationMinutes = 9999 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			availability := &fakeAvailabilityRepo{}
			catalog := &fakeCatalogRepo{service: &domain.Service{ID: "svc-1"}}
			uc := NewUseCase(availability, catalog, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, availability.inserted)
		})
	}
}
