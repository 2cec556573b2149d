package domain

import (
	"time"

	"github.com/swiftmoving/booking-service/pkg/types"
)

// AvailabilitySettings настройки календаря доступности
// Единые для обеих операционных компаний: бригады общие
type AvailabilitySettings struct {
	ID int64

	// Рабочие дни недели: "Monday", "Tuesday", ...
	WorkingDays []string

	StartTime           types.TimeString // начало рабочего дня
	EndTime             types.TimeString // конец рабочего дня
	SlotDurationMinutes int

	// Количество бригад, работающих параллельно в одном слоте
	SlotCapacity int

	MaxAppointmentsPerDay int

	// Полностью заблокированные даты в формате YYYY-MM-DD
	BlockedDates []string

	UpdatedAt time.Time
}

// IsWorkingDay проверяет, что дата приходится на рабочий день недели
func (s *AvailabilitySettings) IsWorkingDay(date time.Time) bool {
	weekday := date.Weekday().String()
	for _, day := range s.WorkingDays {
		if day == weekday {
			return true
		}
	}
	return false
}

// IsBlockedDate проверяет, что дата входит в список заблокированных
func (s *AvailabilitySettings) IsBlockedDate(date time.Time) bool {
	formatted := date.Format(DateFormat)
	for _, blocked := range s.BlockedDates {
		if blocked == formatted {
			return true
		}
	}
	return false
}
