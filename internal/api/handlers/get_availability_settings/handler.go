package get_availability_settings

import (
	"errors"
	"net/http"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	"github.com/swiftmoving/booking-service/internal/service/settings"
)

const msgSettingsNotFound = "availability settings not found"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/availability-settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAvailabilitySettings(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("GET /admin/availability-settings - Settings not found")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("GET /admin/availability-settings - Failed to get settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/availability-settings - Settings retrieved")
	handlers.RespondJSON(w, http.StatusOK, FromDomainSettings(result))
}
