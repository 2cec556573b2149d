package list_appointments

import (
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/internal/service/appointments/models"
)

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	Success      bool          `json:"success"`
	Appointments []Appointment `json:"appointments"`
	Total        int           `json:"total"`
}

// Appointment представление записи в списке
type Appointment struct {
	BookingID    string `json:"bookingId"`
	BusinessUnit string `json:"businessUnit"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	ServiceType string `json:"serviceType"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`

	Total float64 `json:"total"`

	Status string `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	appointments := make([]Appointment, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		appointments[i] = Appointment{
			BookingID:          appt.BookingID,
			BusinessUnit:       string(appt.BusinessUnit),
			CustomerName:       appt.CustomerName,
			CustomerPhone:      appt.CustomerPhone,
			CustomerEmail:      appt.CustomerEmail,
			ServiceType:        string(appt.ServiceType),
			Date:               appt.Date.Format(domain.DateFormat),
			StartTime:          appt.StartTime.String(),
			Total:              appt.Estimate.Total,
			Status:             string(appt.Status),
			CancellationReason: appt.CancellationReason,
			CreatedAt:          appt.CreatedAt.Format(time.RFC3339),
		}
	}

	return &AppointmentListResponse{
		Success:      true,
		Appointments: appointments,
		Total:        resp.Total,
	}
}
