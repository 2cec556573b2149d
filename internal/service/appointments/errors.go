package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	// Отмена терминальна: отмененную запись нельзя отменить повторно
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCannotReschedule возвращается, когда запись не может быть перенесена
	ErrCannotReschedule = errors.New("appointment cannot be rescheduled")

	// ErrSlotNotAvailable возвращается, когда целевой слот переноса недоступен
	ErrSlotNotAvailable = errors.New("target slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при дате переноса в прошлом
	ErrInvalidDate = errors.New("invalid reschedule date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
