package generate_slots

import (
	"time"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	generateSlots "github.com/thetrinh16698/tufting-booking/internal/usecase/generate_slots"
	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

// GenerateSlotsRequest is the HTTP request model. Working hours and slot
// duration fall back to the catalog defaults when omitted.
type GenerateSlotsRequest struct {
	StartDate           string        `json:"startDate"` // "2024-06-01"
	EndDate             string        `json:"endDate"`   // "2024-06-30"
	WorkingHours        *WorkingHours `json:"workingHours,omitempty"`
	SlotDurationMinutes *int          `json:"slotDurationMinutes,omitempty"`
}

// WorkingHours is the daily window in "HH:MM" form.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GenerateSlotsResponse is the HTTP response model.
type GenerateSlotsResponse struct {
	ServiceID string `json:"serviceId"`
	Requested int    `json:"requested"`
	Created   int64  `json:"created"`
}

// ToUseCaseRequest converts the HTTP request, parsing dates and applying
// defaults. Working-hours strings stay unvalidated here: the use case owns
// that check and reports it as a configuration error.
func (r *GenerateSlotsRequest) ToUseCaseRequest(serviceID string) (*generateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	workingHours := domain.WorkingHours{
		Start: types.TimeString(domain.DefaultWorkingHoursStart),
		End:   types.TimeString(domain.DefaultWorkingHoursEnd),
	}
	if r.WorkingHours != nil {
		workingHours.Start = types.TimeString(r.WorkingHours.Start)
		workingHours.End = types.TimeString(r.WorkingHours.End)
	}

	duration := domain.DefaultSlotDurationMinutes
	if r.SlotDurationMinutes != nil {
		duration = *r.SlotDurationMinutes
	}

	return &generateSlots.Request{
		ServiceID:           serviceID,
		StartDate:           startDate,
		EndDate:             endDate,
		WorkingHours:        workingHours,
		SlotDurationMinutes: duration,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		ServiceID: resp.ServiceID,
		Requested: resp.Requested,
		Created:   resp.Created,
	}
}
