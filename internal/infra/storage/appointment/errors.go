package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrDuplicateBookingID возвращается при конфликте booking ID
	ErrDuplicateBookingID = errors.New("appointment.repository: duplicate booking id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrEncodeEstimate возвращается при ошибке сериализации снимка расчета
	ErrEncodeEstimate = errors.New("appointment.repository: failed to encode estimate snapshot")
)
