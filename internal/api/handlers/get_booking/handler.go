package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/thetrinh16698/tufting-booking/internal/api/handlers"
	"github.com/thetrinh16698/tufting-booking/internal/api/middleware"
	"github.com/thetrinh16698/tufting-booking/internal/service/bookings"
)

const (
	msgBookingNotFound = "booking not found"
	msgAccessDenied    = "booking belongs to another user"
	msgUnauthorized    = "missing user identity"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Bookings are private to their owner.
	if booking.UserID != userID {
		h.logger.Warn("GET /bookings/{id} - Access denied: id=%s, user=%s", bookingID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}
