package get_available_slots

import (
	"context"
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
)

type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, date time.Time) ([]domain.AvailabilitySlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
