package reschedule_appointment

import (
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/appointments/models"
	"github.com/swiftmoving/booking-service/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	NewDate      string `json:"newDate"`      // "2026-03-20"
	NewStartTime string `json:"newStartTime"` // "14:00"
}

// RescheduleAppointmentResponse HTTP response model
type RescheduleAppointmentResponse struct {
	Success bool `json:"success"`

	BookingID string `json:"bookingId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`

	PreviousDate      *string `json:"previousDate,omitempty"`
	PreviousStartTime *string `json:"previousStartTime,omitempty"`

	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RescheduleAppointmentRequest) ToServiceRequest() (*models.RescheduleAppointmentRequest, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &models.RescheduleAppointmentRequest{
		NewDate:      newDate,
		NewStartTime: newStartTime,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *RescheduleAppointmentResponse {
	result := &RescheduleAppointmentResponse{
		Success:   true,
		BookingID: resp.BookingID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		Status:    string(resp.Status),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.PreviousDate != nil {
		prevDate := resp.PreviousDate.Format(domain.DateFormat)
		result.PreviousDate = &prevDate
	}
	if resp.PreviousStartTime != nil {
		prevTime := resp.PreviousStartTime.String()
		result.PreviousStartTime = &prevTime
	}

	return result
}
