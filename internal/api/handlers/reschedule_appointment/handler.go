package reschedule_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	"github.com/swiftmoving/booking-service/internal/service/appointments"
)

const (
	msgMissingBookingID    = "booking id is required"
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDateOrTime   = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgInvalidDate         = "new date must not be in the past"
	msgAppointmentNotFound = "appointment not found"
	msgCannotReschedule    = "cancelled appointment cannot be rescheduled"
	msgSlotNotAvailable    = "selected time slot is not available"
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

// Handle PATCH /api/v1/appointments/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /appointments/{bookingId}/reschedule - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{bookingId}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /appointments/{bookingId}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.Reschedule(r.Context(), bookingID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{bookingId}/reschedule - Appointment not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrCannotReschedule):
			h.logger.Warn("PATCH /appointments/{bookingId}/reschedule - Cannot reschedule: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotReschedule, "")

		case errors.Is(err, appointments.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments/{bookingId}/reschedule - Slot not available: booking_id=%s, date=%s, time=%s",
				bookingID, req.NewDate, req.NewStartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable, "")

		case errors.Is(err, appointments.ErrInvalidDate):
			h.logger.Warn("PATCH /appointments/{bookingId}/reschedule - Invalid date: booking_id=%s, date=%s", bookingID, req.NewDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{bookingId}/reschedule - Validation failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /appointments/{bookingId}/reschedule - Failed to reschedule: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{bookingId}/reschedule - Appointment rescheduled: booking_id=%s, date=%s, time=%s",
		bookingID, req.NewDate, req.NewStartTime)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
