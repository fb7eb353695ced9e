package weeklyschedule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило расписания не найдено
	ErrRuleNotFound = errors.New("weeklyschedule.repository: rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("weeklyschedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("weeklyschedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("weeklyschedule.repository: failed to scan row")

	// ErrInvalidTimeValue возвращается, когда время в строке БД не парсится
	ErrInvalidTimeValue = errors.New("weeklyschedule.repository: invalid time value in row")
)
