package domain

// Estimate детализированный расчет стоимости услуги
// Каждое денежное поле независимо округлено до 2 знаков,
// Total равен сумме уже округленных составляющих
type Estimate struct {
	LaborCost             float64 `json:"laborCost"`
	TravelFee             float64 `json:"travelFee"`
	Subtotal              float64 `json:"subtotal"`
	ServiceCharge         float64 `json:"serviceCharge"`
	StairsFee             float64 `json:"stairsFee"`
	SpecialtyItemsFee     float64 `json:"specialtyItemsFee"`
	AdditionalServicesFee float64 `json:"additionalServicesFee"`
	PackingMaterialsFee   float64 `json:"packingMaterialsFee"`
	InsuranceFee          float64 `json:"insuranceFee"`
	Total                 float64 `json:"total"`

	EstimatedDurationHours float64 `json:"estimatedDurationHours"`
}
