package get_appointment

import (
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/appointments/models"
	"github.com/swiftmoving/booking-service/pkg/ptr"
)

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

	PreviousDate      *string `json:"previousDate,omitempty"`
	PreviousStartTime *string `json:"previousStartTime,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	result := &AppointmentResponse{
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

	if resp.PreviousDate != nil {
		result.PreviousDate = ptr.Ptr(resp.PreviousDate.Format(domain.DateFormat))
	}
	if resp.PreviousStartTime != nil {
		result.PreviousStartTime = ptr.Ptr(resp.PreviousStartTime.String())
	}
	result.CancellationReason = resp.CancellationReason
	if resp.CancelledAt != nil {
		result.CancelledAt = ptr.Ptr(resp.CancelledAt.Format(time.RFC3339))
	}

	return result
}
