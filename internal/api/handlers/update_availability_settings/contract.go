package update_availability_settings

import (
	"context"

	"github.com/swiftmoving/booking-service/internal/domain"
)

type SettingsService interface {
	UpdateAvailabilitySettings(ctx context.Context, settings *domain.AvailabilitySettings) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
