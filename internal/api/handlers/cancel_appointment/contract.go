package cancel_appointment

import (
	"context"

	"github.com/swiftmoving/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, bookingID string, req *models.CancelAppointmentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
