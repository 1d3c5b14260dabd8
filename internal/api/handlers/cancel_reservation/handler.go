package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/thetrinh16698/tufting-booking/internal/api/handlers"
	"github.com/thetrinh16698/tufting-booking/internal/api/middleware"
	cancelReservation "github.com/thetrinh16698/tufting-booking/internal/usecase/cancel_reservation"
)

const (
	msgBookingNotFound = "booking not found"
	msgAccessDenied    = "booking belongs to another user"
	msgCannotCancel    = "booking can no longer be cancelled"
	msgUnauthorized    = "missing user identity"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	err := h.useCase.Execute(r.Context(), &cancelReservation.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: id=%s, user=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelReservation.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Not cancellable: id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Cancelled booking id=%s by user=%s", bookingID, userID)
	w.WriteHeader(http.StatusNoContent)
}
