package calculate_estimate

import (
	"github.com/swiftmoving/booking-service/internal/domain"
)

// BuildingDetails HTTP модель стороны погрузки или выгрузки
type BuildingDetails struct {
	HomeType string `json:"homeType"` // "apartment" | "house"
	Stairs   int    `json:"stairs"`   // количество лестничных пролетов
}

// QuoteRequestModel HTTP request model расчета стоимости
type QuoteRequestModel struct {
	ServiceType      string  `json:"serviceType"`
	CrewSize         int     `json:"crewSize,omitempty"`
	DistanceMiles    float64 `json:"distanceMiles,omitempty"`
	DriveTimeMinutes float64 `json:"driveTimeMinutes,omitempty"`
	LaborHours       float64 `json:"laborHours,omitempty"`

	PickupDetails  *BuildingDetails `json:"pickupDetails,omitempty"`
	DropoffDetails *BuildingDetails `json:"dropoffDetails,omitempty"`

	SpecialtyItems []string `json:"specialtyItems,omitempty"`

	PackingService   bool           `json:"packingService,omitempty"`
	MovingBlankets   int            `json:"movingBlankets,omitempty"`
	PackingMaterials map[string]int `json:"packingMaterials,omitempty"`

	InsuranceRequested bool    `json:"insuranceRequested,omitempty"`
	DeclaredValue      float64 `json:"declaredValue,omitempty"`
}

// EstimateResponse HTTP response model расчета стоимости
type EstimateResponse struct {
	Success  bool             `json:"success"`
	Estimate *domain.Estimate `json:"estimate"`
}

// ToQuoteRequest конвертирует HTTP запрос в доменную модель
func (r *QuoteRequestModel) ToQuoteRequest() *domain.QuoteRequest {
	req := &domain.QuoteRequest{
		ServiceType:        domain.ServiceType(r.ServiceType),
		CrewSize:           r.CrewSize,
		DistanceMiles:      r.DistanceMiles,
		DriveTimeMinutes:   r.DriveTimeMinutes,
		LaborHours:         r.LaborHours,
		SpecialtyItems:     r.SpecialtyItems,
		PackingService:     r.PackingService,
		MovingBlankets:     r.MovingBlankets,
		PackingMaterials:   r.PackingMaterials,
		InsuranceRequested: r.InsuranceRequested,
		DeclaredValue:      r.DeclaredValue,
	}
	if r.PickupDetails != nil {
		req.Pickup = domain.BuildingInfo{
			HomeType:     domain.HomeType(r.PickupDetails.HomeType),
			StairFlights: r.PickupDetails.Stairs,
		}
	}
	if r.DropoffDetails != nil {
		req.Dropoff = domain.BuildingInfo{
			HomeType:     domain.HomeType(r.DropoffDetails.HomeType),
			StairFlights: r.DropoffDetails.Stairs,
		}
	}
	return req
}
