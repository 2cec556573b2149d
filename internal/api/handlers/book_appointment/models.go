package book_appointment

import (
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	bookAppointment "github.com/swiftmoving/booking-service/internal/usecase/book_appointment"
	"github.com/swiftmoving/booking-service/pkg/types"
)

// BuildingDetails HTTP модель стороны погрузки или выгрузки
type BuildingDetails struct {
	HomeType string `json:"homeType"`
	Stairs   int    `json:"stairs"`
}

// QuoteModel параметры расчета стоимости в составе бронирования
type QuoteModel struct {
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

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	BusinessUnit string `json:"businessUnit"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	Date      string `json:"date"`      // "2026-03-15"
	StartTime string `json:"startTime"` // "10:00"

	PickupAddress  string `json:"pickupAddress"`
	DropoffAddress string `json:"dropoffAddress"`

	Quote QuoteModel `json:"quote"`

	Notes *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Success bool `json:"success"`

	BookingID    string `json:"bookingId"`
	BusinessUnit string `json:"businessUnit"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	ServiceType string `json:"serviceType"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`

	PickupAddress  string `json:"pickupAddress,omitempty"`
	DropoffAddress string `json:"dropoffAddress,omitempty"`

	Estimate domain.Estimate `json:"estimate"`

	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	quote := domain.QuoteRequest{
		ServiceType:        domain.ServiceType(r.Quote.ServiceType),
		CrewSize:           r.Quote.CrewSize,
		DistanceMiles:      r.Quote.DistanceMiles,
		DriveTimeMinutes:   r.Quote.DriveTimeMinutes,
		LaborHours:         r.Quote.LaborHours,
		SpecialtyItems:     r.Quote.SpecialtyItems,
		PackingService:     r.Quote.PackingService,
		MovingBlankets:     r.Quote.MovingBlankets,
		PackingMaterials:   r.Quote.PackingMaterials,
		InsuranceRequested: r.Quote.InsuranceRequested,
		DeclaredValue:      r.Quote.DeclaredValue,
	}
	if r.Quote.PickupDetails != nil {
		quote.Pickup = domain.BuildingInfo{
			HomeType:     domain.HomeType(r.Quote.PickupDetails.HomeType),
			StairFlights: r.Quote.PickupDetails.Stairs,
		}
	}
	if r.Quote.DropoffDetails != nil {
		quote.Dropoff = domain.BuildingInfo{
			HomeType:     domain.HomeType(r.Quote.DropoffDetails.HomeType),
			StairFlights: r.Quote.DropoffDetails.Stairs,
		}
	}

	return &bookAppointment.Request{
		BusinessUnit:   domain.BusinessUnit(r.BusinessUnit),
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		CustomerEmail:  r.CustomerEmail,
		Date:           date,
		StartTime:      startTime,
		PickupAddress:  r.PickupAddress,
		DropoffAddress: r.DropoffAddress,
		Quote:          quote,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		Success:        true,
		BookingID:      resp.BookingID,
		BusinessUnit:   string(resp.BusinessUnit),
		CustomerName:   resp.CustomerName,
		CustomerPhone:  resp.CustomerPhone,
		CustomerEmail:  resp.CustomerEmail,
		ServiceType:    string(resp.ServiceType),
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		PickupAddress:  resp.PickupAddress,
		DropoffAddress: resp.DropoffAddress,
		Estimate:       resp.Estimate,
		Status:         string(resp.Status),
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
