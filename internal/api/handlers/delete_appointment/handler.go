package delete_appointment

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

// Handle DELETE /api/v1/admin/appointments/{bookingId}
// Жесткое удаление, только для админки: обычный поток использует отмену
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("DELETE /admin/appointments/{bookingId} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /admin/appointments/{bookingId} - Appointment not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("DELETE /admin/appointments/{bookingId} - Failed to delete: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/appointments/{bookingId} - Appointment deleted: booking_id=%s", bookingID)
	w.WriteHeader(http.StatusNoContent)
}
