package reschedule_appointment

import (
	"context"

	"github.com/swiftmoving/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Reschedule(ctx context.Context, bookingID string, req *models.RescheduleAppointmentRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
