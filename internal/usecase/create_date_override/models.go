package create_date_override

import (
	"time"

	"github.com/lengolf/LG-CoachingService/pkg/types"
)

// Request модель запроса на создание исключения на дату
type Request struct {
	CoachID      int64     // ID тренера
	OverrideDate time.Time // Дата исключения (без времени)
	StartTime    *string   // HH:MM, обязательно для available/unavailable
	EndTime      *string   // HH:MM, обязательно для available/unavailable
	OverrideType string    // available | unavailable | custom
	Title        *string   // Подпись; для custom обязательна
}

// Response модель ответа с созданным исключением
type Response struct {
	ID           int64
	CoachID      int64
	OverrideDate time.Time
	StartTime    *types.TimeString
	EndTime      *types.TimeString
	OverrideType string
	Title        *string
	Replaced     int64 // Количество вытесненных пересекающихся исключений
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
