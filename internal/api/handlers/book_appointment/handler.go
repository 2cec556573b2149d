package book_appointment

import (
	"errors"
	"net/http"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	bookAppointment "github.com/swiftmoving/booking-service/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime         = "invalid start time format, expected HH:MM"
	msgInvalidBookingDate  = "booking date must not be in the past"
	msgSlotNotAvailable    = "selected time slot is not available"
	msgConfigUnavailable   = "pricing is temporarily unavailable, please try again"
	msgSettingsUnavailable = "scheduling is temporarily unavailable, please try again"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/book-appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book-appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /book-appointment - Failed to parse request: %v", err)
		if req.StartTime != "" && len(req.StartTime) != 5 {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotErr *bookAppointment.SlotUnavailableError

		switch {
		case errors.As(err, &slotErr):
			h.logger.Warn("POST /book-appointment - Slot not available: unit=%s, date=%s, time=%s, reason=%s",
				req.BusinessUnit, req.Date, req.StartTime, slotErr.Reason)
			handlers.RespondConflict(w, msgSlotNotAvailable, slotErr.Reason)

		case errors.Is(err, bookAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /book-appointment - Slot not available: unit=%s, date=%s, time=%s",
				req.BusinessUnit, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable, "")

		case errors.Is(err, bookAppointment.ErrInvalidDate):
			h.logger.Warn("POST /book-appointment - Invalid booking date: unit=%s, date=%s", req.BusinessUnit, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /book-appointment - Validation failed: unit=%s, error=%v", req.BusinessUnit, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookAppointment.ErrConfigUnavailable):
			h.logger.Error("POST /book-appointment - Pricing config unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgConfigUnavailable)

		case errors.Is(err, bookAppointment.ErrSettingsUnavailable):
			h.logger.Error("POST /book-appointment - Settings unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSettingsUnavailable)

		default:
			h.logger.Error("POST /book-appointment - Failed to book appointment: unit=%s, date=%s, time=%s, error=%v",
				req.BusinessUnit, req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book-appointment - Appointment booked: booking_id=%s, unit=%s, date=%s, time=%s",
		result.BookingID, req.BusinessUnit, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
