package dateoverride

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда исключение не найдено
	ErrOverrideNotFound = errors.New("dateoverride.repository: override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dateoverride.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dateoverride.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dateoverride.repository: failed to scan row")

	// ErrInvalidTimeValue возвращается, когда время в строке БД не парсится
	ErrInvalidTimeValue = errors.New("dateoverride.repository: invalid time value in row")
)
