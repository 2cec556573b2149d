package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/appointments"
	"github.com/swiftmoving/booking-service/internal/service/appointments/models"
)

const (
	msgInvalidUnit  = "unknown business unit"
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange = "startDate must not be after endDate"
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

// Handle GET /api/v1/admin/appointments
// Query params: businessUnit, date, startDate, endDate, includeCancelled — все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListAppointmentsRequest{
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	if unitStr := query.Get("businessUnit"); unitStr != "" {
		unit := domain.BusinessUnit(unitStr)
		if !unit.IsValid() {
			h.logger.Warn("GET /admin/appointments - Unknown business unit: %s", unitStr)
			handlers.RespondBadRequest(w, msgInvalidUnit)
			return
		}
		req.BusinessUnit = &unit
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if startStr := query.Get("startDate"); startStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endStr := query.Get("endDate"); endStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if req.StartDate != nil && req.EndDate != nil && req.StartDate.After(*req.EndDate) {
		h.logger.Warn("GET /admin/appointments - startDate after endDate")
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments listed: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
