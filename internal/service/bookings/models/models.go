package models

import (
	"time"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
)

// BookingResponse is the ledger's read projection of one booking, including
// the denormalized service snapshot and slot times for display.
type BookingResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	ServiceID string  `json:"serviceId"`
	SlotID    *string `json:"slotId,omitempty"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`

	TotalPrice      float64 `json:"totalPrice"`
	ServiceName     string  `json:"serviceName"`
	DurationMinutes int     `json:"durationMinutes"`

	SlotDate      *string `json:"slotDate,omitempty"`
	SlotStartTime *string `json:"slotStartTime,omitempty"`
	SlotEndTime   *string `json:"slotEndTime,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// BookingListResponse is the ledger's list projection.
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBooking maps a domain booking to the read projection.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceID:       b.ServiceID,
		SlotID:          b.SlotID,
		Status:          string(b.Status),
		Notes:           b.Notes,
		TotalPrice:      b.TotalPrice,
		ServiceName:     b.ServiceName,
		DurationMinutes: b.DurationMinutes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}

	if b.SlotDate != nil {
		date := b.SlotDate.Format(domain.DateFormat)
		resp.SlotDate = &date
	}
	if b.SlotStartTime != nil {
		start := b.SlotStartTime.String()
		resp.SlotStartTime = &start
	}
	if b.SlotEndTime != nil {
		end := b.SlotEndTime.String()
		resp.SlotEndTime = &end
	}
	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainBookingList maps a list of domain bookings, preserving order.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
