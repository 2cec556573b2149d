package calculate_estimate

import (
	"context"

	"github.com/swiftmoving/booking-service/internal/domain"
)

type CalculateEstimateUseCase interface {
	Execute(ctx context.Context, req *domain.QuoteRequest) (*domain.Estimate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
