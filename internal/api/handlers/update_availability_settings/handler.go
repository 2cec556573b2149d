package update_availability_settings

import (
	"errors"
	"net/http"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	"github.com/swiftmoving/booking-service/internal/service/settings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgSettingsNotFound   = "availability settings not found"
)

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

// Handle PUT /api/v1/admin/availability-settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateAvailabilitySettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability-settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	domainSettings, err := req.ToDomainSettings()
	if err != nil {
		h.logger.Warn("PUT /admin/availability-settings - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.service.UpdateAvailabilitySettings(r.Context(), domainSettings); err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/availability-settings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("PUT /admin/availability-settings - Settings not found")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("PUT /admin/availability-settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability-settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, UpdateAvailabilitySettingsResponse{Success: true})
}
