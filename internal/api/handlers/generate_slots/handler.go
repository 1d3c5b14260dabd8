package generate_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/thetrinh16698/tufting-booking/internal/api/handlers"
	generateSlots "github.com/thetrinh16698/tufting-booking/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgServiceNotFound     = "service not found"
	msgInvalidWorkingHours = "invalid working hours configuration"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/services/{serviceId}/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID := vars["serviceId"]

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/{id}/slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(serviceID)
	if err != nil {
		h.logger.Warn("POST /services/{id}/slots/generate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrServiceNotFound):
			h.logger.Warn("POST /services/{id}/slots/generate - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, generateSlots.ErrInvalidWorkingHours):
			h.logger.Warn("POST /services/{id}/slots/generate - Invalid working hours: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /services/{id}/slots/generate - Invalid input: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /services/{id}/slots/generate - Failed to generate slots: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/{id}/slots/generate - Generated slots: service_id=%s, created=%d",
		serviceID, result.Created)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
