package settings

import "errors"

var (
	// ErrConfigNotFound возвращается, когда активная тарифная сетка не найдена
	ErrConfigNotFound = errors.New("pricing configuration not found")

	// ErrSettingsNotFound возвращается, когда настройки календаря не найдены
	ErrSettingsNotFound = errors.New("availability settings not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
