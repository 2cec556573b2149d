package get_pricing_config

import (
	"errors"
	"net/http"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/settings"
)

const msgConfigNotFound = "pricing configuration not found"

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

// Handle GET /api/v1/admin/pricing-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetPricingConfig(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrConfigNotFound):
			h.logger.Warn("GET /admin/pricing-config - Config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("GET /admin/pricing-config - Failed to get config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/pricing-config - Config retrieved: version=%d", cfg.Version)
	handlers.RespondJSON(w, http.StatusOK, PricingConfigResponse{Success: true, Config: cfg})
}
