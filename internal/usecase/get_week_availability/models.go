package get_week_availability

import (
	"time"

	"github.com/lengolf/LG-CoachingService/internal/domain"
)

// Request модель запроса на получение недельной сетки доступности
type Request struct {
	CoachID   int64     // ID тренера
	StartDate time.Time // Любая дата внутри интересующей недели (нормализуется к понедельнику)
}

// Response модель ответа с недельной сеткой доступности
type Response struct {
	CoachID   int64                    // ID тренера
	CoachName string                   // Имя тренера из StaffService
	WeekStart time.Time                // Понедельник недели
	WeekEnd   time.Time                // Воскресенье недели
	Days      []domain.DayAvailability // Ровно 7 дней, по 12 слотов каждый
}
