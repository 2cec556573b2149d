package cancel_appointment

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/appointments"
	"github.com/swiftmoving/booking-service/internal/service/appointments/models"
)

const (
	msgMissingBookingID    = "booking id is required"
	msgInvalidRequestBody  = "invalid request body"
	msgAppointmentNotFound = "appointment not found"
	msgCannotCancel        = "appointment is already cancelled"
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

// Handle PATCH /api/v1/appointments/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /appointments/{bookingId}/cancel - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	// Тело запроса опционально: отмена без причины допустима
	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /appointments/{bookingId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Cancel(r.Context(), bookingID, &models.CancelAppointmentRequest{Reason: req.Reason})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{bookingId}/cancel - Appointment not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{bookingId}/cancel - Cannot cancel: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotCancel, "")

		default:
			h.logger.Error("PATCH /appointments/{bookingId}/cancel - Failed to cancel: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{bookingId}/cancel - Appointment cancelled: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, CancelAppointmentResponse{
		Success:   true,
		BookingID: bookingID,
		Status:    string(domain.StatusCancelled),
	})
}
