package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/swiftmoving/booking-service/internal/domain"
)

// Engine движок расчета стоимости услуг
// Единственная реализация для всех каналов (чат-бот, голосовой AI, админка):
// каждый канал обязан получать одинаковую цену за одинаковый запрос.
// Движок детерминирован, не делает I/O и всегда получает актуальную
// тарифную сетку от вызывающей стороны
type Engine struct {
	logger Logger
}

// NewEngine создает новый движок расчета стоимости
func NewEngine(logger Logger) *Engine {
	return &Engine{logger: logger}
}

// CalculateEstimate рассчитывает детализированную стоимость по запросу и тарифной сетке
// Каждое денежное поле результата независимо округлено до 2 знаков,
// Total - сумма уже округленных составляющих: повторный вызов с теми же
// аргументами возвращает побайтно идентичный результат
func (e *Engine) CalculateEstimate(req *domain.QuoteRequest, cfg *domain.PricingConfiguration) (*domain.Estimate, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	crewSize := e.clampCrewSize(req)

	var (
		labor    decimal.Decimal
		travel   decimal.Decimal
		duration decimal.Decimal
	)

	switch req.ServiceType {
	case domain.ServiceMoving:
		rates := cfg.MovingService
		hourly := decimal.NewFromFloat(rates.BaseHourlyRate).
			Add(decimal.NewFromFloat(req.DistanceMiles).Mul(decimal.NewFromFloat(rates.PerMileDistanceAdjustment))).
			Add(decimal.NewFromInt(int64(crewSize - domain.MinCrewSize)).Mul(decimal.NewFromFloat(rates.PerExtraCrewMemberRate)))

		duration = decimal.NewFromFloat(domain.MovingBaseLaborHours).
			Add(decimal.NewFromFloat(req.DriveTimeMinutes).Div(decimal.NewFromInt(60)))
		labor = hourly.Mul(duration)

	case domain.ServiceLaborOnly:
		rates := cfg.LaborOnlyService
		hourly := decimal.NewFromFloat(rates.BaseHourlyRate).
			Add(decimal.NewFromInt(int64(crewSize - domain.MinCrewSize)).Mul(decimal.NewFromFloat(rates.PerExtraCrewMemberRate))).
			Add(decimal.NewFromFloat(req.DistanceMiles).Mul(decimal.NewFromFloat(rates.PerMileDistanceAdjustment)))

		duration = decimal.NewFromFloat(req.LaborHours)
		labor = hourly.Mul(duration)
		// Дорога туда и обратно
		travel = decimal.NewFromFloat(req.DistanceMiles).
			Mul(decimal.NewFromInt(2)).
			Mul(decimal.NewFromFloat(rates.RoundTripTravelRatePerMile))

	case domain.ServiceSingleItem:
		rates := cfg.SingleItemService
		labor = decimal.NewFromFloat(rates.BaseFlatRate)
		travel = decimal.NewFromFloat(req.DistanceMiles).Mul(decimal.NewFromFloat(rates.PerMileDistanceRate))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, req.ServiceType)
	}

	labor = labor.Round(2)
	travel = travel.Round(2)
	subtotal := labor.Add(travel)

	serviceCharge := subtotal.Mul(serviceChargeFraction(req.ServiceType, cfg)).Round(2)

	stairs := stairsFee(req, cfg).Round(2)

	specialty, extraHours, err := specialtyItemsFee(req, cfg)
	if err != nil {
		return nil, err
	}
	specialty = specialty.Round(2)
	duration = duration.Add(extraHours)

	additional := additionalServicesFee(req, cfg).Round(2)

	materials, err := packingMaterialsFee(req, cfg)
	if err != nil {
		return nil, err
	}
	materials = materials.Round(2)

	insurance := decimal.Zero
	if req.InsuranceRequested {
		insurance = decimal.NewFromFloat(req.DeclaredValue).
			Mul(decimal.NewFromFloat(cfg.InsuranceRateFraction)).
			Round(2)
	}

	total := subtotal.
		Add(serviceCharge).
		Add(stairs).
		Add(specialty).
		Add(additional).
		Add(materials).
		Add(insurance)

	return &domain.Estimate{
		LaborCost:              labor.InexactFloat64(),
		TravelFee:              travel.InexactFloat64(),
		Subtotal:               subtotal.InexactFloat64(),
		ServiceCharge:          serviceCharge.InexactFloat64(),
		StairsFee:              stairs.InexactFloat64(),
		SpecialtyItemsFee:      specialty.InexactFloat64(),
		AdditionalServicesFee:  additional.InexactFloat64(),
		PackingMaterialsFee:    materials.InexactFloat64(),
		InsuranceFee:           insurance.InexactFloat64(),
		Total:                  total.InexactFloat64(),
		EstimatedDurationHours: duration.Round(2).InexactFloat64(),
	}, nil
}

// clampCrewSize приводит размер бригады к допустимому диапазону [2, 4]
// Выход за границы логируется, но не считается ошибкой
func (e *Engine) clampCrewSize(req *domain.QuoteRequest) int {
	if req.ServiceType == domain.ServiceSingleItem {
		return domain.MinCrewSize
	}

	switch {
	case req.CrewSize < domain.MinCrewSize:
		e.logger.Warn("pricing: crew size %d below minimum, clamped to %d", req.CrewSize, domain.MinCrewSize)
		return domain.MinCrewSize
	case req.CrewSize > domain.MaxCrewSize:
		e.logger.Warn("pricing: crew size %d above maximum, clamped to %d", req.CrewSize, domain.MaxCrewSize)
		return domain.MaxCrewSize
	default:
		return req.CrewSize
	}
}

// serviceChargeFraction возвращает процент сервисного сбора для вида услуги
func serviceChargeFraction(serviceType domain.ServiceType, cfg *domain.PricingConfiguration) decimal.Decimal {
	switch serviceType {
	case domain.ServiceLaborOnly:
		return decimal.NewFromFloat(cfg.LaborOnlyService.ServiceChargeFraction)
	case domain.ServiceSingleItem:
		return decimal.NewFromFloat(cfg.SingleItemService.ServiceChargeFraction)
	default:
		return decimal.NewFromFloat(cfg.MovingService.ServiceChargeFraction)
	}
}

// stairsFee считает плату за лестничные пролеты
// Погрузка и выгрузка считаются независимо, тариф зависит от типа здания
// и применяется одинаково для любого вида услуги
func stairsFee(req *domain.QuoteRequest, cfg *domain.PricingConfiguration) decimal.Decimal {
	return sideStairsFee(req.Pickup, cfg.StairFees).Add(sideStairsFee(req.Dropoff, cfg.StairFees))
}

func sideStairsFee(building domain.BuildingInfo, rates domain.StairFeeRates) decimal.Decimal {
	if building.StairFlights <= 0 {
		return decimal.Zero
	}

	rate := rates.HouseRatePerFlight
	if building.HomeType == domain.HomeApartment {
		rate = rates.ApartmentRatePerFlight
	}
	return decimal.NewFromInt(int64(building.StairFlights)).Mul(decimal.NewFromFloat(rate))
}

// specialtyItemsFee считает суммарную плату и дополнительное время за спецпредметы
// Каждый предмет независим: платы и часы складываются
func specialtyItemsFee(req *domain.QuoteRequest, cfg *domain.PricingConfiguration) (decimal.Decimal, decimal.Decimal, error) {
	fee := decimal.Zero
	extraHours := decimal.Zero

	for _, item := range req.SpecialtyItems {
		itemFee, ok := cfg.SpecialtyItemFees[item]
		if !ok {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: unknown specialty item %q", ErrInvalidInput, item)
		}
		fee = fee.Add(decimal.NewFromFloat(itemFee.FlatFee))
		extraHours = extraHours.Add(decimal.NewFromFloat(itemFee.ExtraTimeHours))
	}

	return fee, extraHours, nil
}

// additionalServicesFee считает плату за дополнительные услуги: упаковку и одеяла
func additionalServicesFee(req *domain.QuoteRequest, cfg *domain.PricingConfiguration) decimal.Decimal {
	fee := decimal.Zero

	if req.PackingService {
		fee = fee.Add(decimal.NewFromFloat(cfg.AdditionalServices.PackingServiceFee))
	}
	if req.MovingBlankets > 0 {
		fee = fee.Add(decimal.NewFromInt(int64(req.MovingBlankets)).
			Mul(decimal.NewFromFloat(cfg.AdditionalServices.PerBlanketRate)))
	}

	return fee
}

// packingMaterialsFee считает плату за упаковочные материалы по количеству
func packingMaterialsFee(req *domain.QuoteRequest, cfg *domain.PricingConfiguration) (decimal.Decimal, error) {
	fee := decimal.Zero

	for material, quantity := range req.PackingMaterials {
		if quantity == 0 {
			continue
		}
		unitPrice, ok := cfg.PackingMaterials[material]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: unknown packing material %q", ErrInvalidInput, material)
		}
		fee = fee.Add(decimal.NewFromInt(int64(quantity)).Mul(decimal.NewFromFloat(unitPrice)))
	}

	return fee, nil
}

// validateRequest проверяет структурную корректность запроса
// Бизнесовые граничные случаи (нулевая дистанция, нулевой размер бригады)
// не являются ошибками и деградируют к минимальным значениям
func validateRequest(req *domain.QuoteRequest) error {
	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownServiceType, req.ServiceType)
	}

	if req.DistanceMiles < 0 {
		return fmt.Errorf("%w: distance must not be negative", ErrInvalidInput)
	}
	if req.DriveTimeMinutes < 0 {
		return fmt.Errorf("%w: drive time must not be negative", ErrInvalidInput)
	}
	if req.LaborHours < 0 {
		return fmt.Errorf("%w: labor hours must not be negative", ErrInvalidInput)
	}
	if req.ServiceType == domain.ServiceLaborOnly && req.LaborHours == 0 {
		return fmt.Errorf("%w: labor hours are required for labor-only service", ErrInvalidInput)
	}

	if req.Pickup.StairFlights < 0 || req.Dropoff.StairFlights < 0 {
		return fmt.Errorf("%w: stair flights must not be negative", ErrInvalidInput)
	}
	if req.MovingBlankets < 0 {
		return fmt.Errorf("%w: moving blankets quantity must not be negative", ErrInvalidInput)
	}
	for material, quantity := range req.PackingMaterials {
		if quantity < 0 {
			return fmt.Errorf("%w: packing material %q quantity must not be negative", ErrInvalidInput, material)
		}
	}

	if req.InsuranceRequested && req.DeclaredValue <= 0 {
		return fmt.Errorf("%w: declared value is required for insurance", ErrInvalidInput)
	}

	return nil
}
