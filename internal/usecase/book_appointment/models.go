package book_appointment

import (
	"time"

	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	BusinessUnit domain.BusinessUnit

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Date      time.Time
	StartTime types.TimeString

	PickupAddress  string
	DropoffAddress string

	// Параметры расчета стоимости: расчет повторяется на момент
	// бронирования по актуальной тарифной сетке
	Quote domain.QuoteRequest

	Notes *string
}

// Response модель ответа с созданной записью
type Response struct {
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

	// Снимок расчета, сохраненный на записи
	Estimate domain.Estimate

	Status domain.AppointmentStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
