package get_week_availability

import (
	"github.com/lengolf/LG-CoachingService/internal/domain"
	getWeekAvailability "github.com/lengolf/LG-CoachingService/internal/usecase/get_week_availability"
)

// TimeSlotResponse HTTP модель одного слота сетки
type TimeSlotResponse struct {
	Time   string  `json:"time"`   // "10:00"
	Status string  `json:"status"` // available | unavailable | blocked | override-unavailable | override-available
	Title  *string `json:"title,omitempty"`
}

// DayResponse HTTP модель одного дня сетки
type DayResponse struct {
	Date      string             `json:"date"` // "2026-03-02"
	DayOfWeek int                `json:"dayOfWeek"`
	IsToday   bool               `json:"isToday"`
	TimeSlots []TimeSlotResponse `json:"timeSlots"`
}

// WeekAvailabilityResponse HTTP модель недельной сетки доступности
type WeekAvailabilityResponse struct {
	CoachID       int64         `json:"coachId"`
	CoachName     string        `json:"coachName"`
	WeekStart     string        `json:"weekStart"`     // Понедельник недели
	WeekEnd       string        `json:"weekEnd"`       // Воскресенье недели
	PrevWeekStart string        `json:"prevWeekStart"` // Понедельник предыдущей недели
	NextWeekStart string        `json:"nextWeekStart"` // Понедельник следующей недели
	Days          []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekAvailability.Response) *WeekAvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]TimeSlotResponse, 0, len(day.TimeSlots))
		for _, slot := range day.TimeSlots {
			slots = append(slots, TimeSlotResponse{
				Time:   slot.Time.String(),
				Status: string(slot.Status),
				Title:  slot.Title,
			})
		}
		days = append(days, DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			DayOfWeek: day.DayOfWeek,
			IsToday:   day.IsToday,
			TimeSlots: slots,
		})
	}

	return &WeekAvailabilityResponse{
		CoachID:       resp.CoachID,
		CoachName:     resp.CoachName,
		WeekStart:     resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:       resp.WeekEnd.Format(domain.DateFormat),
		PrevWeekStart: domain.PrevWeek(resp.WeekStart).Format(domain.DateFormat),
		NextWeekStart: domain.NextWeek(resp.WeekStart).Format(domain.DateFormat),
		Days:          days,
	}
}
