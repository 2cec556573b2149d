package appointments

import (
	"context"
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/integrations/notifier"
	"github.com/swiftmoving/booking-service/internal/service/availability"
	"github.com/swiftmoving/booking-service/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Reschedule(ctx context.Context, bookingID string, schedule domain.RescheduleUpdate) error
	Cancel(ctx context.Context, bookingID string, reason string) error
	Delete(ctx context.Context, bookingID string) error
}

// SettingsRepository интерфейс репозитория настроек календаря
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AvailabilitySettings, error)
}

// AvailabilityChecker интерфейс календаря доступности
type AvailabilityChecker interface {
	CheckSlot(date time.Time, startTime types.TimeString, settings *domain.AvailabilitySettings, appointments []*domain.Appointment) availability.Decision
}

// NotifierClient интерфейс клиента шлюза уведомлений
type NotifierClient interface {
	Send(ctx context.Context, event notifier.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
