package create_reservation

import (
	"time"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	createReservation "github.com/thetrinh16698/tufting-booking/internal/usecase/create_reservation"
)

// CreateReservationRequest is the HTTP request model.
type CreateReservationRequest struct {
	ServiceID string  `json:"serviceId"`
	SlotID    string  `json:"slotId"`
	Notes     *string `json:"notes,omitempty"`
}

// CreateReservationResponse is the HTTP response model.
type CreateReservationResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	ServiceID string  `json:"serviceId"`
	SlotID    string  `json:"slotId"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`

	TotalPrice      float64 `json:"totalPrice"`
	ServiceName     string  `json:"serviceName"`
	DurationMinutes int     `json:"durationMinutes"`

	SlotDate      string `json:"slotDate"`
	SlotStartTime string `json:"slotStartTime"`
	SlotEndTime   string `json:"slotEndTime"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request to the use case model.
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) *createReservation.Request {
	return &createReservation.Request{
		UserID:    userID,
		ServiceID: r.ServiceID,
		SlotID:    r.SlotID,
		Notes:     r.Notes,
	}
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		ServiceID:       resp.ServiceID,
		SlotID:          resp.SlotID,
		Status:          resp.Status,
		Notes:           resp.Notes,
		TotalPrice:      resp.TotalPrice,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		SlotDate:        resp.SlotDate.Format(domain.DateFormat),
		SlotStartTime:   resp.SlotStartTime.String(),
		SlotEndTime:     resp.SlotEndTime.String(),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
