package settings

import (
	"context"

	"github.com/swiftmoving/booking-service/internal/domain"
)

// PricingConfigRepository интерфейс репозитория тарифных сеток
type PricingConfigRepository interface {
	GetActive(ctx context.Context) (*domain.PricingConfiguration, error)
	ReplaceActive(ctx context.Context, cfg *domain.PricingConfiguration) (*domain.PricingConfiguration, error)
}

// AvailabilitySettingsRepository интерфейс репозитория настроек календаря
type AvailabilitySettingsRepository interface {
	Get(ctx context.Context) (*domain.AvailabilitySettings, error)
	Update(ctx context.Context, settings *domain.AvailabilitySettings) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
