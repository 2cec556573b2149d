package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/integrations/notifier"
	"github.com/swiftmoving/booking-service/internal/service/pricing"
)

// notifyTimeout таймаут фоновой отправки уведомления
const notifyTimeout = 15 * time.Second

// UseCase use case создания записи на переезд
// Доступность перепроверяется внутри сериализуемой транзакции
// непосредственно перед вставкой: это закрывает окно между просмотром
// слота клиентом и подтверждением
type UseCase struct {
	appointmentRepo AppointmentRepository
	configProvider  ConfigProvider
	settingsRepo    SettingsRepository
	engine          PricingEngine
	checker         AvailabilityChecker
	notifierClient  NotifierClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configProvider ConfigProvider,
	settingsRepo SettingsRepository,
	engine PricingEngine,
	checker AvailabilityChecker,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configProvider:  configProvider,
		settingsRepo:    settingsRepo,
		engine:          engine,
		checker:         checker,
		notifierClient:  notifierClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет создание записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: unit=%s, service=%s, date=%s, time=%s",
		req.BusinessUnit, req.Quote.ServiceType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("BookAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 2. Расчет стоимости по актуальной тарифной сетке
	// Снимок расчета сохраняется на записи
	cfg, err := uc.configProvider.GetActive(ctx)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to load pricing config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}

	estimate, err := uc.engine.CalculateEstimate(&req.Quote, cfg)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownServiceType) || errors.Is(err, pricing.ErrInvalidInput) {
			uc.logger.Warn("BookAppointment: estimate validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("BookAppointment: estimate failed: %v", err)
		return nil, fmt.Errorf("%w: estimate failed: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 3. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to load availability settings: %v", err)
			return fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
		}

		// Записи ОБЕИХ компаний на эту дату с блокировкой (FOR UPDATE):
		// одна компания не должна перебронировать общую бригаду другой
		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{
			Date: &req.Date,
		})
		if err != nil {
			uc.logger.Error("BookAppointment: failed to load appointments: %v", err)
			return fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
		}

		decision := uc.checker.CheckSlot(req.Date, req.StartTime, settings, appointments)
		if !decision.Available {
			uc.logger.Warn("BookAppointment: slot %s %s not available: %s",
				req.Date.Format(domain.DateFormat), req.StartTime, decision.Reason)
			return &SlotUnavailableError{Reason: decision.Reason}
		}

		appt := &domain.Appointment{
			BookingID:      domain.NewBookingID(req.BusinessUnit),
			BusinessUnit:   req.BusinessUnit,
			CustomerName:   req.CustomerName,
			CustomerPhone:  req.CustomerPhone,
			CustomerEmail:  req.CustomerEmail,
			ServiceType:    req.Quote.ServiceType,
			Date:           req.Date,
			StartTime:      req.StartTime,
			PickupAddress:  req.PickupAddress,
			DropoffAddress: req.DropoffAddress,
			Estimate:       *estimate,
			Status:         domain.StatusConfirmed,
			Notes:          req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: created booking_id=%s, total=%.2f", result.BookingID, result.Estimate.Total)

	// 4. Уведомления fire-and-forget: бронирование состоялось независимо
	// от доставки email/SMS
	uc.notifyAsync(result)

	return toResponse(result), nil
}

// notifyAsync отправляет событие подтверждения в фоне
func (uc *UseCase) notifyAsync(appt *domain.Appointment) {
	event := notifier.Event{
		Type:          notifier.EventBookingConfirmed,
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

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifierClient.Send(ctx, event); err != nil {
			uc.logger.Error("BookAppointment: failed to notify booking_id=%s: %v", appt.BookingID, err)
		}
	}()
}

// toResponse конвертирует доменную модель в response
func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		BookingID:      appt.BookingID,
		BusinessUnit:   appt.BusinessUnit,
		CustomerName:   appt.CustomerName,
		CustomerPhone:  appt.CustomerPhone,
		CustomerEmail:  appt.CustomerEmail,
		ServiceType:    appt.ServiceType,
		Date:           appt.Date,
		StartTime:      appt.StartTime,
		PickupAddress:  appt.PickupAddress,
		DropoffAddress: appt.DropoffAddress,
		Estimate:       appt.Estimate,
		Status:         appt.Status,
		Notes:          appt.Notes,
		CreatedAt:      appt.CreatedAt,
		UpdatedAt:      appt.UpdatedAt,
	}
}
