package pricingconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда активная тарифная сетка не найдена
	ErrConfigNotFound = errors.New("pricingconfig.repository: active pricing configuration not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricingconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricingconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricingconfig.repository: failed to scan row")

	// ErrEncodeConfig возвращается при ошибке сериализации тарифной сетки
	ErrEncodeConfig = errors.New("pricingconfig.repository: failed to encode configuration")
)
