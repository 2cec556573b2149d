package models

import (
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/pkg/types"
)

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	Reason string
}

// RescheduleAppointmentRequest запрос на перенос записи
type RescheduleAppointmentRequest struct {
	NewDate      time.Time
	NewStartTime types.TimeString
}

// ListAppointmentsRequest запрос на выборку записей (админка)
type ListAppointmentsRequest struct {
	BusinessUnit     *domain.BusinessUnit
	Date             *time.Time
	StartDate        *time.Time
	EndDate          *time.Time
	IncludeCancelled bool
}

// ToDomainFilter конвертирует request в доменный фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		BusinessUnit:     r.BusinessUnit,
		Date:             r.Date,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// AppointmentResponse представление записи для вызывающего слоя
type AppointmentResponse struct {
	BookingID    string
	BusinessUnit domain.BusinessUnit

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceType domain.ServiceType
	Date        time.Time
	StartTime   types.TimeString

	PickupAddress  string
	DropoffAddress string

	Estimate domain.Estimate

	Status domain.AppointmentStatus
	Notes  *string

	PreviousDate      *time.Time
	PreviousStartTime *types.TimeString

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// FromDomainAppointment конвертирует доменную модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		BookingID:          appt.BookingID,
		BusinessUnit:       appt.BusinessUnit,
		CustomerName:       appt.CustomerName,
		CustomerPhone:      appt.CustomerPhone,
		CustomerEmail:      appt.CustomerEmail,
		ServiceType:        appt.ServiceType,
		Date:               appt.Date,
		StartTime:          appt.StartTime,
		PickupAddress:      appt.PickupAddress,
		DropoffAddress:     appt.DropoffAddress,
		Estimate:           appt.Estimate,
		Status:             appt.Status,
		Notes:              appt.Notes,
		PreviousDate:       appt.PreviousDate,
		PreviousStartTime:  appt.PreviousStartTime,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        appt.CancelledAt,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей в response
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}
