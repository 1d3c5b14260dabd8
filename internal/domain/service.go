package domain

import "time"

// Service is a catalog entry, read-only to the booking engine. Its price
// and duration are snapshotted onto bookings at creation time.
type Service struct {
	ID              string
	Name            string
	Slug            string
	Description     *string
	Price           float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
