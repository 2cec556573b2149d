package domain

import "time"

// MovingServiceRates тарифы услуги переезда
type MovingServiceRates struct {
	BaseHourlyRate            float64 `json:"baseHourlyRate"`
	PerMileDistanceAdjustment float64 `json:"perMileDistanceAdjustment"`
	PerExtraCrewMemberRate    float64 `json:"perExtraCrewMemberRate"`
	ServiceChargeFraction     float64 `json:"serviceChargeFraction"`
}

// LaborOnlyServiceRates тарифы услуги грузчиков без транспорта
type LaborOnlyServiceRates struct {
	BaseHourlyRate             float64 `json:"baseHourlyRate"`
	PerExtraCrewMemberRate     float64 `json:"perExtraCrewMemberRate"`
	PerMileDistanceAdjustment  float64 `json:"perMileDistanceAdjustment"`
	RoundTripTravelRatePerMile float64 `json:"roundTripTravelRatePerMile"`
	ServiceChargeFraction      float64 `json:"serviceChargeFraction"`
}

// SingleItemServiceRates тарифы перевозки одного предмета
type SingleItemServiceRates struct {
	BaseFlatRate          float64 `json:"baseFlatRate"`
	PerMileDistanceRate   float64 `json:"perMileDistanceRate"`
	ServiceChargeFraction float64 `json:"serviceChargeFraction"`
}

// StairFeeRates тарифы за лестничные пролеты по типу здания
type StairFeeRates struct {
	ApartmentRatePerFlight float64 `json:"apartmentRatePerFlight"`
	HouseRatePerFlight     float64 `json:"houseRatePerFlight"`
}

// SpecialtyItemFee фиксированная плата и дополнительное время за спецпредмет
type SpecialtyItemFee struct {
	FlatFee        float64 `json:"flatFee"`
	ExtraTimeHours float64 `json:"extraTimeHours"`
}

// AdditionalServiceRates тарифы дополнительных услуг
type AdditionalServiceRates struct {
	PackingServiceFee float64 `json:"packingServiceFee"`
	PerBlanketRate    float64 `json:"perBlanketRate"`
}

// PricingConfiguration тарифная сетка компании
// В каждый момент активна ровно одна версия; движок расчета всегда
// читает актуальную версию, а не кешированную копию
type PricingConfiguration struct {
	ID        int64     `json:"-"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"-"`

	MovingService     MovingServiceRates     `json:"movingService"`
	LaborOnlyService  LaborOnlyServiceRates  `json:"laborOnlyService"`
	SingleItemService SingleItemServiceRates `json:"singleItemService"`

	StairFees             StairFeeRates               `json:"stairFees"`
	SpecialtyItemFees     map[string]SpecialtyItemFee `json:"specialtyItemFlatFees"`
	AdditionalServices    AdditionalServiceRates      `json:"additionalServices"`
	PackingMaterials      map[string]float64          `json:"packingMaterials"` // вид материала -> цена за единицу
	InsuranceRateFraction float64                     `json:"insuranceRateFraction"`
}
