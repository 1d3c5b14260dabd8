package generate_slots

import (
	"fmt"
	"time"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
)

// validateRequest checks the request before any slot is written. Working
// hours are a configuration input: any defect here fails the whole call.
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	if req.EndDate.Sub(req.StartDate) > time.Duration(domain.MaxGenerationRangeDays)*24*time.Hour {
		return fmt.Errorf("%w: date range exceeds %d days", ErrInvalidInput, domain.MaxGenerationRangeDays)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return validateWorkingHours(req.WorkingHours)
}

// validateWorkingHours rejects malformed HH:MM strings and windows that do
// not end strictly after they start. A window wrapping past midnight is a
// configuration error, never an implicit next-day extension.
func validateWorkingHours(wh domain.WorkingHours) error {
	if err := wh.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidWorkingHours, err)
	}
	if err := wh.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidWorkingHours, err)
	}

	if !wh.End.IsAfter(wh.Start) {
		return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidWorkingHours, wh.End, wh.Start)
	}

	return nil
}
