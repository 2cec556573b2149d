package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	"github.com/swiftmoving/booking-service/internal/domain"
	getAvailableSlots "github.com/swiftmoving/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "date is required"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgSettingsUnavailable = "scheduling is temporarily unavailable, please try again"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.useCase.Execute(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Validation failed: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrSettingsUnavailable):
			h.logger.Error("GET /available-slots - Settings unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgSettingsUnavailable)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved: date=%s, slots_count=%d", dateStr, len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(dateStr, slots))
}
