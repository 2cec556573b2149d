package calculate_estimate

import "errors"

var (
	// ErrInvalidInput возвращается при структурно некорректном запросе
	ErrInvalidInput = errors.New("calculate_estimate: invalid input data")

	// ErrConfigUnavailable возвращается, когда активная тарифная сетка недоступна
	// Фолбэка на устаревшую копию нет: видимая недоступность лучше
	// незаметно неверной цены
	ErrConfigUnavailable = errors.New("calculate_estimate: pricing configuration unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_estimate: internal error")
)
