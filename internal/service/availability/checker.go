package availability

import (
	"fmt"
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/pkg/types"
)

// Человекочитаемые причины недоступности слота
// Строки едины для всех каналов: чат-бот, голосовой AI и админка
// показывают клиенту одно и то же объяснение
const (
	ReasonDateBlocked   = "date blocked"
	ReasonNotWorkingDay = "not a working day"
	ReasonOutsideHours  = "outside business hours"
	ReasonSlotFull      = "slot full"
	ReasonDayFull       = "day fully booked"
)

// Decision результат точечной проверки доступности слота
// Недоступный слот - ожидаемый исход, а не ошибка
type Decision struct {
	Available bool
	Reason    string
}

// Checker календарь доступности, общий для обеих операционных компаний
// Вся логика чистая: состояние календаря передается аргументами
// и никогда не кешируется между запросами
type Checker struct{}

// NewChecker создает новый календарь доступности
func NewChecker() *Checker {
	return &Checker{}
}

// BuildDaySlots перечисляет все слоты рабочего дня с признаком доступности
// Слот недоступен, если дата заблокирована, все места в слоте заняты
// или достигнут дневной лимит записей
// appointments должны быть выборкой по ОБЕИМ компаниям: бригады общие
func (c *Checker) BuildDaySlots(
	date time.Time,
	settings *domain.AvailabilitySettings,
	appointments []*domain.Appointment,
) ([]domain.AvailabilitySlot, error) {
	if !settings.IsWorkingDay(date) {
		return []domain.AvailabilitySlot{}, nil
	}

	starts, err := generateTimeSlots(settings)
	if err != nil {
		return nil, err
	}

	// Заблокированная дата: слоты перечисляются, но все недоступны
	if settings.IsBlockedDate(date) {
		slots := make([]domain.AvailabilitySlot, len(starts))
		for i, start := range starts {
			slots[i] = domain.AvailabilitySlot{
				StartTime:       start,
				DurationMinutes: settings.SlotDurationMinutes,
				Available:       false,
			}
		}
		return slots, nil
	}

	dayFull := countActiveAppointments(appointments) >= settings.MaxAppointmentsPerDay

	slots := make([]domain.AvailabilitySlot, len(starts))
	for i, start := range starts {
		available := !dayFull &&
			countOverlappingAppointments(start, settings.SlotDurationMinutes, appointments) < settings.SlotCapacity

		slots[i] = domain.AvailabilitySlot{
			StartTime:       start,
			DurationMinutes: settings.SlotDurationMinutes,
			Available:       available,
		}
	}

	return slots, nil
}

// CheckSlot точечная проверка: можно ли создать запись на дату и время
// Вызывается непосредственно перед записью в хранилище, чтобы закрыть
// окно между просмотром слота клиентом и подтверждением
func (c *Checker) CheckSlot(
	date time.Time,
	startTime types.TimeString,
	settings *domain.AvailabilitySettings,
	appointments []*domain.Appointment,
) Decision {
	if settings.IsBlockedDate(date) {
		return Decision{Available: false, Reason: ReasonDateBlocked}
	}

	if !settings.IsWorkingDay(date) {
		return Decision{Available: false, Reason: ReasonNotWorkingDay}
	}

	if !isWithinBusinessHours(startTime, settings) {
		return Decision{Available: false, Reason: ReasonOutsideHours}
	}

	if countActiveAppointments(appointments) >= settings.MaxAppointmentsPerDay {
		return Decision{Available: false, Reason: ReasonDayFull}
	}

	occupied := countOverlappingAppointments(startTime, settings.SlotDurationMinutes, appointments)
	if occupied >= settings.SlotCapacity {
		return Decision{Available: false, Reason: ReasonSlotFull}
	}

	return Decision{Available: true}
}

// generateTimeSlots генерирует все начала слотов от открытия до закрытия
// с фиксированным шагом; слот, не умещающийся до закрытия, отбрасывается
func generateTimeSlots(settings *domain.AvailabilitySettings) ([]types.TimeString, error) {
	if err := settings.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("invalid start time: %v", err)
	}
	if err := settings.EndTime.Validate(); err != nil {
		return nil, fmt.Errorf("invalid end time: %v", err)
	}

	starts := make([]types.TimeString, 0)
	current := settings.StartTime

	for current.IsBefore(settings.EndTime) {
		slotEnd, err := current.AddMinutes(settings.SlotDurationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(settings.EndTime) {
			break
		}

		starts = append(starts, current)
		current = slotEnd
	}

	return starts, nil
}

// isWithinBusinessHours проверяет, что слот целиком лежит в рабочих часах
// и выровнен по сетке слотов
func isWithinBusinessHours(startTime types.TimeString, settings *domain.AvailabilitySettings) bool {
	starts, err := generateTimeSlots(settings)
	if err != nil {
		return false
	}
	for _, start := range starts {
		if start == startTime {
			return true
		}
	}
	return false
}

// countOverlappingAppointments подсчитывает активные записи, пересекающиеся со слотом
// Интервалы, которые только граничат, пересечением не считаются
func countOverlappingAppointments(
	slotStart types.TimeString,
	slotDuration int,
	appointments []*domain.Appointment,
) int {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return 0
	}

	count := 0
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptStart := appt.StartTime
		apptEnd, err := appt.StartTime.AddMinutes(slotDuration)
		if err != nil {
			continue
		}

		if apptStart.IsBefore(slotEnd) && apptEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}

// countActiveAppointments подсчитывает активные записи за день
// Отмененные записи слоты не занимают
func countActiveAppointments(appointments []*domain.Appointment) int {
	count := 0
	for _, appt := range appointments {
		if appt.IsActive() {
			count++
		}
	}
	return count
}
