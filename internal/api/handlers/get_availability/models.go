package get_availability

import (
	"github.com/thetrinh16698/tufting-booking/internal/domain"
	getAvailability "github.com/thetrinh16698/tufting-booking/internal/usecase/get_availability"
)

// AvailabilityResponse is the HTTP response model.
type AvailabilityResponse struct {
	ServiceID string `json:"serviceId"`
	Slots     []Slot `json:"slots"`
}

// Slot is one projected availability entry.
type Slot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, Slot{
			ID:        s.ID,
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			IsBooked:  s.IsBooked,
		})
	}

	return &AvailabilityResponse{
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}
