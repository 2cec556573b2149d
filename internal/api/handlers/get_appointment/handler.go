package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	"github.com/swiftmoving/booking-service/internal/service/appointments"
)

const (
	msgMissingBookingID    = "booking id is required"
	msgAppointmentNotFound = "appointment not found"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /appointments/{bookingId} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	result, err := h.service.GetByBookingID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{bookingId} - Appointment not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /appointments/{bookingId} - Failed to get appointment: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{bookingId} - Appointment retrieved: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
