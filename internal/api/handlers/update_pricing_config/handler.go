package update_pricing_config

import (
	"errors"
	"net/http"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/settings"
)

const msgInvalidRequestBody = "invalid request body"

// PricingConfigResponse HTTP response model
type PricingConfigResponse struct {
	Success bool                         `json:"success"`
	Config  *domain.PricingConfiguration `json:"config"`
}

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

// Handle PUT /api/v1/admin/pricing-config
// Публикует новую версию тарифной сетки; прежняя деактивируется атомарно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var cfg domain.PricingConfiguration
	if err := handlers.DecodeJSON(r, &cfg); err != nil {
		h.logger.Warn("PUT /admin/pricing-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePricingConfig(r.Context(), &cfg)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/pricing-config - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/pricing-config - Failed to update config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/pricing-config - Config published: version=%d", result.Version)
	handlers.RespondJSON(w, http.StatusOK, PricingConfigResponse{Success: true, Config: result})
}
