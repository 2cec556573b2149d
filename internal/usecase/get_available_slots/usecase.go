package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
)

// UseCase use case получения доступных слотов на дату
// Слоты вычисляются заново из текущего состояния хранилища при каждом
// вызове: кеширование между запросами вело бы к двойному бронированию
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	checker         AvailabilityChecker
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	checker AvailabilityChecker,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		checker:         checker,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает все слоты рабочего дня с признаком доступности
func (uc *UseCase) Execute(ctx context.Context, date time.Time) ([]domain.AvailabilitySlot, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Прошедшие даты не бронируются - возвращаем пустой список слотов
	if isDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return []domain.AvailabilitySlot{}, nil
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load availability settings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}

	// Записи обеих операционных компаний: бригады общие,
	// занятость считается по всему пулу
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		Date: &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	slots, err := uc.checker.BuildDaySlots(date, settings, appointments)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for date=%s", len(slots), date.Format(domain.DateFormat))
	return slots, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
