package get_availability_settings

import (
	"github.com/swiftmoving/booking-service/internal/domain"
)

// AvailabilitySettingsResponse HTTP response model
type AvailabilitySettingsResponse struct {
	Success  bool                  `json:"success"`
	Settings *AvailabilitySettings `json:"settings"`
}

// AvailabilitySettings модель настроек календаря
type AvailabilitySettings struct {
	WorkingDays           []string `json:"workingDays"`
	StartTime             string   `json:"startTime"`
	EndTime               string   `json:"endTime"`
	SlotDurationMinutes   int      `json:"slotDurationMinutes"`
	SlotCapacity          int      `json:"slotCapacity"`
	MaxAppointmentsPerDay int      `json:"maxAppointmentsPerDay"`
	BlockedDates          []string `json:"blockedDates"`
}

// FromDomainSettings конвертирует доменную модель в HTTP response
func FromDomainSettings(settings *domain.AvailabilitySettings) *AvailabilitySettingsResponse {
	return &AvailabilitySettingsResponse{
		Success: true,
		Settings: &AvailabilitySettings{
			WorkingDays:           settings.WorkingDays,
			StartTime:             settings.StartTime.String(),
			EndTime:               settings.EndTime.String(),
			SlotDurationMinutes:   settings.SlotDurationMinutes,
			SlotCapacity:          settings.SlotCapacity,
			MaxAppointmentsPerDay: settings.MaxAppointmentsPerDay,
			BlockedDates:          settings.BlockedDates,
		},
	}
}
