package get_available_slots

import (
	"github.com/swiftmoving/booking-service/internal/domain"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Success bool            `json:"success"`
	Date    string          `json:"date"`
	Slots   []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromDomainSlots конвертирует доменные слоты в HTTP response
func FromDomainSlots(date string, slots []domain.AvailabilitySlot) *AvailableSlotsResponse {
	result := make([]AvailableSlot, len(slots))
	for i, slot := range slots {
		result[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Success: true,
		Date:    date,
		Slots:   result,
	}
}
