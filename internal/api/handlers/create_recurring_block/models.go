package create_recurring_block

import (
	"github.com/lengolf/LG-CoachingService/internal/service/schedule/models"
)

// CreateRecurringBlockRequest HTTP request model
type CreateRecurringBlockRequest struct {
	Title     string `json:"title"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = Sunday ... 6 = Saturday
	StartTime string `json:"startTime"` // "11:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRecurringBlockRequest) ToServiceRequest(coachID int64) *models.CreateRecurringBlockRequest {
	return &models.CreateRecurringBlockRequest{
		CoachID:   coachID,
		Title:     r.Title,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
