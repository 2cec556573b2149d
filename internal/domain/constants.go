package domain

// Размер бригады
const (
	MinCrewSize = 2
	MaxCrewSize = 4
)

// Базовое время работ для услуги переезда в часах
// Время в пути добавляется сверху
const MovingBaseLaborHours = 3.0

// Дефолтные настройки календаря доступности
const (
	DefaultSlotDurationMinutes   = 60
	DefaultSlotCapacity          = 1
	DefaultMaxAppointmentsPerDay = 8
)

// Ограничения валидации настроек
const (
	MinSlotDurationMinutes   = 30
	MaxSlotDurationMinutes   = 240
	MinSlotCapacity          = 1
	MaxSlotCapacity          = 10
	MinAppointmentsPerDay    = 1
	MaxAppointmentsPerDayCap = 50
	MaxNotesLength           = 500
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
