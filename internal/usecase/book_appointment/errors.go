package book_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при структурно некорректном запросе
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("book_appointment: invalid booking date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен
	// Ожидаемый, частый исход: каналы предлагают клиенту другое время
	ErrSlotNotAvailable = errors.New("book_appointment: slot is not available")

	// ErrConfigUnavailable возвращается, когда тарифная сетка недоступна
	ErrConfigUnavailable = errors.New("book_appointment: pricing configuration unavailable")

	// ErrSettingsUnavailable возвращается, когда настройки календаря недоступны
	ErrSettingsUnavailable = errors.New("book_appointment: availability settings unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)

// SlotUnavailableError несет человекочитаемую причину недоступности слота
// Причина едина для всех каналов и отдается клиенту как есть
type SlotUnavailableError struct {
	Reason string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSlotNotAvailable, e.Reason)
}

func (e *SlotUnavailableError) Unwrap() error {
	return ErrSlotNotAvailable
}
