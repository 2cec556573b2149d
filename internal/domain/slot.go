package domain

import "github.com/swiftmoving/booking-service/pkg/types"

// AvailabilitySlot временной слот календаря доступности
// Вычисляется заново при каждом запросе и никогда не кешируется:
// устаревший слот - прямой путь к двойному бронированию
type AvailabilitySlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}
