package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	settingsRepo "github.com/swiftmoving/booking-service/internal/infra/storage/availabilitysettings"
	configRepo "github.com/swiftmoving/booking-service/internal/infra/storage/pricingconfig"
)

// Service сервис управления тарифами и настройками календаря
// Используется только административным каналом; остальные каналы
// читают тарифы опосредованно, через расчет стоимости
type Service struct {
	configRepo   PricingConfigRepository
	settingsRepo AvailabilitySettingsRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	configRepo PricingConfigRepository,
	settingsRepo AvailabilitySettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		configRepo:   configRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetPricingConfig возвращает активную тарифную сетку
func (s *Service) GetPricingConfig(ctx context.Context) (*domain.PricingConfiguration, error) {
	cfg, err := s.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("GetPricingConfig: no active configuration")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetPricingConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPricingConfig - repository error: %v", ErrInternal, err)
	}
	return cfg, nil
}

// UpdatePricingConfig публикует новую версию тарифной сетки
// Смена версии атомарна: в любой момент активна ровно одна сетка,
// и следующий расчет стоимости уже читает новую
func (s *Service) UpdatePricingConfig(ctx context.Context, cfg *domain.PricingConfiguration) (*domain.PricingConfiguration, error) {
	s.logger.Info("UpdatePricingConfig: publishing new pricing configuration")

	if err := validatePricingConfig(cfg); err != nil {
		s.logger.Warn("UpdatePricingConfig: validation failed: %v", err)
		return nil, err
	}

	var result *domain.PricingConfiguration
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		replaced, err := s.configRepo.ReplaceActive(txCtx, cfg)
		if err != nil {
			return fmt.Errorf("%w: UpdatePricingConfig - repository error: %v", ErrInternal, err)
		}
		result = replaced
		return nil
	})
	if err != nil {
		s.logger.Error("UpdatePricingConfig: %v", err)
		return nil, err
	}

	s.logger.Info("UpdatePricingConfig: published version=%d", result.Version)
	return result, nil
}

// GetAvailabilitySettings возвращает настройки календаря доступности
func (s *Service) GetAvailabilitySettings(ctx context.Context) (*domain.AvailabilitySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetAvailabilitySettings: settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetAvailabilitySettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAvailabilitySettings - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// UpdateAvailabilitySettings обновляет настройки календаря доступности
func (s *Service) UpdateAvailabilitySettings(ctx context.Context, settings *domain.AvailabilitySettings) error {
	s.logger.Info("UpdateAvailabilitySettings: updating settings")

	if err := validateAvailabilitySettings(settings); err != nil {
		s.logger.Warn("UpdateAvailabilitySettings: validation failed: %v", err)
		return err
	}

	// Настройки хранятся единственной строкой - подставляем её id
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return ErrSettingsNotFound
		}
		s.logger.Error("UpdateAvailabilitySettings: repository error: %v", err)
		return fmt.Errorf("%w: UpdateAvailabilitySettings - repository error: %v", ErrInternal, err)
	}
	settings.ID = current.ID

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return ErrSettingsNotFound
		}
		s.logger.Error("UpdateAvailabilitySettings: repository error: %v", err)
		return fmt.Errorf("%w: UpdateAvailabilitySettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvailabilitySettings: settings updated")
	return nil
}

// validatePricingConfig проверяет корректность тарифной сетки
func validatePricingConfig(cfg *domain.PricingConfiguration) error {
	if cfg.MovingService.BaseHourlyRate <= 0 {
		return fmt.Errorf("%w: movingService.baseHourlyRate must be positive", ErrInvalidInput)
	}
	if cfg.LaborOnlyService.BaseHourlyRate <= 0 {
		return fmt.Errorf("%w: laborOnlyService.baseHourlyRate must be positive", ErrInvalidInput)
	}
	if cfg.SingleItemService.BaseFlatRate <= 0 {
		return fmt.Errorf("%w: singleItemService.baseFlatRate must be positive", ErrInvalidInput)
	}

	fractions := map[string]float64{
		"movingService.serviceChargeFraction":     cfg.MovingService.ServiceChargeFraction,
		"laborOnlyService.serviceChargeFraction":  cfg.LaborOnlyService.ServiceChargeFraction,
		"singleItemService.serviceChargeFraction": cfg.SingleItemService.ServiceChargeFraction,
		"insuranceRateFraction":                   cfg.InsuranceRateFraction,
	}
	for name, fraction := range fractions {
		if fraction < 0 || fraction >= 1 {
			return fmt.Errorf("%w: %s must be in [0, 1)", ErrInvalidInput, name)
		}
	}

	if cfg.MovingService.PerExtraCrewMemberRate < 0 || cfg.LaborOnlyService.PerExtraCrewMemberRate < 0 {
		return fmt.Errorf("%w: perExtraCrewMemberRate must not be negative", ErrInvalidInput)
	}
	if cfg.StairFees.ApartmentRatePerFlight < 0 || cfg.StairFees.HouseRatePerFlight < 0 {
		return fmt.Errorf("%w: stair fee rates must not be negative", ErrInvalidInput)
	}

	for item, fee := range cfg.SpecialtyItemFees {
		if fee.FlatFee < 0 || fee.ExtraTimeHours < 0 {
			return fmt.Errorf("%w: specialty item %q has negative fee or time", ErrInvalidInput, item)
		}
	}
	for material, price := range cfg.PackingMaterials {
		if price < 0 {
			return fmt.Errorf("%w: packing material %q has negative unit price", ErrInvalidInput, material)
		}
	}

	return nil
}

// validateAvailabilitySettings проверяет корректность настроек календаря
func validateAvailabilitySettings(settings *domain.AvailabilitySettings) error {
	if len(settings.WorkingDays) == 0 {
		return fmt.Errorf("%w: at least one working day is required", ErrInvalidInput)
	}
	for _, day := range settings.WorkingDays {
		if !isWeekday(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
	}

	if err := settings.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := settings.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	if !settings.StartTime.IsBefore(settings.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	if settings.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		settings.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if settings.SlotCapacity < domain.MinSlotCapacity || settings.SlotCapacity > domain.MaxSlotCapacity {
		return fmt.Errorf("%w: slot capacity must be between %d and %d",
			ErrInvalidInput, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}
	if settings.MaxAppointmentsPerDay < domain.MinAppointmentsPerDay ||
		settings.MaxAppointmentsPerDay > domain.MaxAppointmentsPerDayCap {
		return fmt.Errorf("%w: max appointments per day must be between %d and %d",
			ErrInvalidInput, domain.MinAppointmentsPerDay, domain.MaxAppointmentsPerDayCap)
	}

	for _, blocked := range settings.BlockedDates {
		if _, err := time.Parse(domain.DateFormat, blocked); err != nil {
			return fmt.Errorf("%w: invalid blocked date %q, expected YYYY-MM-DD", ErrInvalidInput, blocked)
		}
	}

	return nil
}

// isWeekday проверяет, что строка является английским названием дня недели
func isWeekday(day string) bool {
	switch day {
	case "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday":
		return true
	default:
		return false
	}
}
