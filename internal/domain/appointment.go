package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swiftmoving/booking-service/pkg/types"
)

// AppointmentStatus статус записи на переезд
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// BusinessUnit операционная компания
// Обе компании делят общий пул бригад и общий календарь доступности
type BusinessUnit string

const (
	UnitSwiftMoving BusinessUnit = "swift_moving"
	UnitApexLabor   BusinessUnit = "apex_labor"
)

// BusinessUnits список всех операционных компаний
var BusinessUnits = []BusinessUnit{UnitSwiftMoving, UnitApexLabor}

// IsValid проверяет, что значение является известной операционной компанией
func (u BusinessUnit) IsValid() bool {
	return u == UnitSwiftMoving || u == UnitApexLabor
}

// BookingIDPrefix возвращает префикс booking ID для компании
func (u BusinessUnit) BookingIDPrefix() string {
	switch u {
	case UnitApexLabor:
		return "AL"
	default:
		return "SM"
	}
}

// NewBookingID генерирует уникальный booking ID с префиксом компании
// Формат: SM-3F2A9C41
func NewBookingID(unit BusinessUnit) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return unit.BookingIDPrefix() + "-" + suffix
}

// Appointment запись на переезд - основная сущность системы
type Appointment struct {
	ID           int64
	BookingID    string
	BusinessUnit BusinessUnit

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceType ServiceType
	Date        time.Time
	StartTime   types.TimeString

	PickupAddress  string
	DropoffAddress string

	// Снимок расчета стоимости на момент бронирования
	Estimate Estimate

	Status AppointmentStatus
	Notes  *string

	// История переноса: заполняется при изменении даты/времени
	PreviousDate      *time.Time
	PreviousStartTime *types.TimeString

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает слот в календаре
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled возвращает true, если запись отменена
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled возвращает true, если запись можно отменить
// Отмена - терминальный переход, повторная отмена невозможна
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// CanBeRescheduled возвращает true, если запись можно перенести
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusConfirmed
}

// RescheduleUpdate параметры переноса записи на новые дату и время
type RescheduleUpdate struct {
	NewDate           time.Time
	NewStartTime      types.TimeString
	PreviousDate      time.Time
	PreviousStartTime types.TimeString
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	BusinessUnit     *BusinessUnit // nil - по всем компаниям
	Date             *time.Time    // nil - без ограничения по дате
	StartDate        *time.Time
	EndDate          *time.Time
	IncludeCancelled bool
}
