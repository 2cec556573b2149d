package update_pricing_config

import (
	"context"

	"github.com/swiftmoving/booking-service/internal/domain"
)

type SettingsService interface {
	UpdatePricingConfig(ctx context.Context, cfg *domain.PricingConfiguration) (*domain.PricingConfiguration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
