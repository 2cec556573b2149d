package calculate_estimate

import (
	"context"

	"github.com/swiftmoving/booking-service/internal/domain"
)

// ConfigProvider интерфейс доступа к активной тарифной сетке
// Реализация обязана перечитывать сетку при каждом вызове:
// устаревшие тарифы означают разные цены в разных каналах
type ConfigProvider interface {
	GetActive(ctx context.Context) (*domain.PricingConfiguration, error)
}

// PricingEngine интерфейс движка расчета стоимости
type PricingEngine interface {
	CalculateEstimate(req *domain.QuoteRequest, cfg *domain.PricingConfiguration) (*domain.Estimate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
