package pricing

import "errors"

var (
	// ErrUnknownServiceType возвращается при нераспознанном виде услуги
	// Нераспознанная услуга - это ошибка, а не нулевая стоимость
	ErrUnknownServiceType = errors.New("pricing: unknown service type")

	// ErrInvalidInput возвращается при структурно некорректном запросе
	// (отрицательные дистанция/часы/количества, неизвестный предмет или материал)
	ErrInvalidInput = errors.New("pricing: invalid input")
)
