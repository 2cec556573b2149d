package calculate_estimate

import (
	"context"
	"errors"
	"fmt"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/pricing"
)

// UseCase use case расчета стоимости услуги
// Один и тот же расчет обслуживает чат-бот, голосовой AI и админку
type UseCase struct {
	configProvider ConfigProvider
	engine         PricingEngine
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(configProvider ConfigProvider, engine PricingEngine, logger Logger) *UseCase {
	return &UseCase{
		configProvider: configProvider,
		engine:         engine,
		logger:         logger,
	}
}

// Execute выполняет расчет стоимости по запросу
// Тарифная сетка читается заново при каждом вызове
func (uc *UseCase) Execute(ctx context.Context, req *domain.QuoteRequest) (*domain.Estimate, error) {
	uc.logger.Info("CalculateEstimate: service=%s, crew=%d, distance=%.1fmi, driveTime=%.0fmin",
		req.ServiceType, req.CrewSize, req.DistanceMiles, req.DriveTimeMinutes)

	cfg, err := uc.configProvider.GetActive(ctx)
	if err != nil {
		uc.logger.Error("CalculateEstimate: failed to load active pricing config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}

	estimate, err := uc.engine.CalculateEstimate(req, cfg)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownServiceType) || errors.Is(err, pricing.ErrInvalidInput) {
			uc.logger.Warn("CalculateEstimate: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CalculateEstimate: engine error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CalculateEstimate: service=%s, total=%.2f (config version=%d)",
		req.ServiceType, estimate.Total, cfg.Version)

	return estimate, nil
}
