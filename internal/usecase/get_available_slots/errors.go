package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrSettingsUnavailable возвращается, когда настройки календаря недоступны
	ErrSettingsUnavailable = errors.New("get_available_slots: availability settings unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
