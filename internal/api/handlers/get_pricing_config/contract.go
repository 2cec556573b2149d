package get_pricing_config

import (
	"context"

	"github.com/swiftmoving/booking-service/internal/domain"
)

type SettingsService interface {
	GetPricingConfig(ctx context.Context) (*domain.PricingConfiguration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
