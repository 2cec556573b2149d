package notifier

// EventType тип события для шлюза уведомлений
type EventType string

const (
	EventBookingConfirmed   EventType = "booking_confirmed"
	EventBookingCancelled   EventType = "booking_cancelled"
	EventBookingRescheduled EventType = "booking_rescheduled"
)

// Event событие о записи, по которому шлюз рассылает
// email, SMS и обновляет календарь
type Event struct {
	Type          EventType `json:"type"`
	BookingID     string    `json:"bookingId"`
	BusinessUnit  string    `json:"businessUnit"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail"`
	ServiceType   string    `json:"serviceType"`
	Date          string    `json:"date"` // YYYY-MM-DD
	StartTime     string    `json:"startTime"`

	// Для переноса: прежние дата и время
	PreviousDate      string `json:"previousDate,omitempty"`
	PreviousStartTime string `json:"previousStartTime,omitempty"`

	Total float64 `json:"total,omitempty"`
}
