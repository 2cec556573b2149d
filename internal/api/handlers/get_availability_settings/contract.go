package get_availability_settings

import (
	"context"

	"github.com/swiftmoving/booking-service/internal/domain"
)

type SettingsService interface {
	GetAvailabilitySettings(ctx context.Context) (*domain.AvailabilitySettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
