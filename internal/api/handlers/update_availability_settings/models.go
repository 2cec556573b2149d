package update_availability_settings

import (
	"github.com/swiftmoving/booking-service/internal/domain"
	"github.com/swiftmoving/booking-service/pkg/types"
)

// UpdateAvailabilitySettingsRequest HTTP request model
type UpdateAvailabilitySettingsRequest struct {
	WorkingDays           []string `json:"workingDays"`
	StartTime             string   `json:"startTime"` // "08:00"
	EndTime               string   `json:"endTime"`   // "18:00"
	SlotDurationMinutes   int      `json:"slotDurationMinutes"`
	SlotCapacity          int      `json:"slotCapacity"`
	MaxAppointmentsPerDay int      `json:"maxAppointmentsPerDay"`
	BlockedDates          []string `json:"blockedDates"`
}

// UpdateAvailabilitySettingsResponse HTTP response model
type UpdateAvailabilitySettingsResponse struct {
	Success bool `json:"success"`
}

// ToDomainSettings конвертирует HTTP запрос в доменную модель
func (r *UpdateAvailabilitySettingsRequest) ToDomainSettings() (*domain.AvailabilitySettings, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.AvailabilitySettings{
		WorkingDays:           r.WorkingDays,
		StartTime:             startTime,
		EndTime:               endTime,
		SlotDurationMinutes:   r.SlotDurationMinutes,
		SlotCapacity:          r.SlotCapacity,
		MaxAppointmentsPerDay: r.MaxAppointmentsPerDay,
		BlockedDates:          r.BlockedDates,
	}, nil
}
