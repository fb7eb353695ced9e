package upsert_weekly_schedule

import (
	"github.com/lengolf/LG-CoachingService/internal/service/schedule/models"
)

// UpsertWeeklyScheduleRequest HTTP request model
type UpsertWeeklyScheduleRequest struct {
	DayOfWeek   int    `json:"dayOfWeek"`   // 0 = Sunday ... 6 = Saturday
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`     // "17:00"
	IsAvailable bool   `json:"isAvailable"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertWeeklyScheduleRequest) ToServiceRequest(coachID int64) *models.UpsertWeeklyScheduleRequest {
	return &models.UpsertWeeklyScheduleRequest{
		CoachID:     coachID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsAvailable: r.IsAvailable,
	}
}
