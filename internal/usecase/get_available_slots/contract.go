package get_available_slots

import (
	"context"
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/availability"
	"github.com/swiftmoving/booking-service/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория настроек календаря
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AvailabilitySettings, error)
}

// AvailabilityChecker интерфейс календаря доступности
type AvailabilityChecker interface {
	BuildDaySlots(date time.Time, settings *domain.AvailabilitySettings, appointments []*domain.Appointment) ([]domain.AvailabilitySlot, error)
	CheckSlot(date time.Time, startTime types.TimeString, settings *domain.AvailabilitySettings, appointments []*domain.Appointment) availability.Decision
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
