package staffservice

// Coach модель тренера из StaffService
type Coach struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Specialty   string `json:"specialty"` // golf, putting, junior и т.п.
	IsActive    bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
