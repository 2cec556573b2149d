package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	apptRepo "github.com/swiftmoving/booking-service/internal/infra/storage/appointment"
	"github.com/swiftmoving/booking-service/internal/integrations/notifier"
	"github.com/swiftmoving/booking-service/internal/service/appointments/models"
	"github.com/swiftmoving/booking-service/pkg/types"
)

// notifyTimeout таймаут фоновой отправки уведомления
const notifyTimeout = 15 * time.Second

// Service сервис для работы с существующими записями:
// получение, выборка, отмена, перенос, удаление
type Service struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	checker         AvailabilityChecker
	notifierClient  NotifierClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	checker AvailabilityChecker,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		checker:         checker,
		notifierClient:  notifierClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByBookingID получает запись по booking ID
func (s *Service) GetByBookingID(ctx context.Context, bookingID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByBookingID: fetching booking_id=%s", bookingID)

	appt, err := s.appointmentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByBookingID: booking_id=%s not found", bookingID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByBookingID: repository error for booking_id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи с фильтрацией для административного канала
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := "List: fetching appointments"
	if req.BusinessUnit != nil {
		logMsg += fmt.Sprintf(", unit=%s", *req.BusinessUnit)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	if req.BusinessUnit != nil && !req.BusinessUnit.IsValid() {
		s.logger.Warn("List: unknown business unit %q", *req.BusinessUnit)
		return nil, fmt.Errorf("%w: unknown business unit", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.GetWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет запись
// Статус cancelled терминальный; освобожденный слот становится
// доступным для следующего запроса доступности
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling booking_id=%s", bookingID)

	appt, err := s.appointmentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: booking_id=%s not found", bookingID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for booking_id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: booking_id=%s cannot be cancelled, status=%s", bookingID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, bookingID, req.Reason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for booking_id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled booking_id=%s", bookingID)

	s.notifyAsync(notifier.EventBookingCancelled, appt, nil, nil)
	return nil
}

// Reschedule переносит запись на новые дату и время
// Целевой слот проверяется по тем же правилам, что и при создании,
// в одной сериализуемой транзакции с обновлением; сама переносимая
// запись из подсчета занятости исключается
func (s *Service) Reschedule(ctx context.Context, bookingID string, req *models.RescheduleAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Reschedule: booking_id=%s to date=%s, time=%s",
		bookingID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	if req.NewDate.IsZero() || req.NewStartTime.IsZero() {
		return nil, fmt.Errorf("%w: new date and start time are required", ErrInvalidInput)
	}
	if err := req.NewStartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid start time format: %v", ErrInvalidInput, err)
	}
	if isDateInPast(req.NewDate, s.timeProvider.Now()) {
		return nil, ErrInvalidDate
	}

	var result *domain.Appointment

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByBookingID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}

		if !appt.CanBeRescheduled() {
			s.logger.Warn("Reschedule: booking_id=%s cannot be rescheduled, status=%s", bookingID, appt.Status)
			return ErrCannotReschedule
		}

		settings, err := s.settingsRepo.Get(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Reschedule - failed to load settings: %v", ErrInternal, err)
		}

		appointments, err := s.appointmentRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{
			Date: &req.NewDate,
		})
		if err != nil {
			return fmt.Errorf("%w: Reschedule - failed to load appointments: %v", ErrInternal, err)
		}

		// Исключаем переносимую запись: она не занимает целевой слот
		others := make([]*domain.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if a.BookingID != bookingID {
				others = append(others, a)
			}
		}

		decision := s.checker.CheckSlot(req.NewDate, req.NewStartTime, settings, others)
		if !decision.Available {
			s.logger.Warn("Reschedule: target slot %s %s not available: %s",
				req.NewDate.Format(domain.DateFormat), req.NewStartTime, decision.Reason)
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, decision.Reason)
		}

		previousDate := appt.Date
		previousStartTime := appt.StartTime

		err = s.appointmentRepo.Reschedule(txCtx, bookingID, domain.RescheduleUpdate{
			NewDate:           req.NewDate,
			NewStartTime:      req.NewStartTime,
			PreviousDate:      previousDate,
			PreviousStartTime: previousStartTime,
		})
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}

		appt.PreviousDate = &previousDate
		appt.PreviousStartTime = &previousStartTime
		appt.Date = req.NewDate
		appt.StartTime = req.NewStartTime
		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Reschedule: booking_id=%s moved to %s %s",
		bookingID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	s.notifyAsync(notifier.EventBookingRescheduled, result, result.PreviousDate, result.PreviousStartTime)
	return models.FromDomainAppointment(result), nil
}

// Delete физически удаляет запись (только административный канал)
func (s *Service) Delete(ctx context.Context, bookingID string) error {
	s.logger.Info("Delete: deleting booking_id=%s", bookingID)

	if err := s.appointmentRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: booking_id=%s not found", bookingID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for booking_id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted booking_id=%s", bookingID)
	return nil
}

// notifyAsync отправляет событие в шлюз уведомлений в фоне
func (s *Service) notifyAsync(eventType notifier.EventType, appt *domain.Appointment, prevDate *time.Time, prevTime *types.TimeString) {
	event := notifier.Event{
		Type:          eventType,
		BookingID:     appt.BookingID,
		BusinessUnit:  string(appt.BusinessUnit),
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		CustomerEmail: appt.CustomerEmail,
		ServiceType:   string(appt.ServiceType),
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime.String(),
		Total:         appt.Estimate.Total,
	}

	if prevDate != nil {
		event.PreviousDate = prevDate.Format(domain.DateFormat)
	}
	if prevTime != nil {
		event.PreviousStartTime = prevTime.String()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifierClient.Send(ctx, event); err != nil {
			s.logger.Error("notify: failed to send %s for booking_id=%s: %v", eventType, appt.BookingID, err)
		}
	}()
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
