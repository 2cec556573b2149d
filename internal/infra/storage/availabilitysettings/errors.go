package availabilitysettings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки календаря не найдены
	ErrSettingsNotFound = errors.New("availabilitysettings.repository: settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availabilitysettings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availabilitysettings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availabilitysettings.repository: failed to scan row")
)
