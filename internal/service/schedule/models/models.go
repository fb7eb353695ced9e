package models

import (
	"time"

	"github.com/lengolf/LG-CoachingService/internal/domain"
)

// Request модели

// UpsertWeeklyScheduleRequest запрос на создание или обновление правила расписания
type UpsertWeeklyScheduleRequest struct {
	CoachID     int64  `json:"coachId"`
	DayOfWeek   int    `json:"dayOfWeek"`   // 0 = Sunday ... 6 = Saturday
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`     // "17:00"
	IsAvailable bool   `json:"isAvailable"`
}

// CreateRecurringBlockRequest запрос на создание еженедельной блокировки
type CreateRecurringBlockRequest struct {
	CoachID   int64  `json:"coachId"`
	Title     string `json:"title"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = Sunday ... 6 = Saturday
	StartTime string `json:"startTime"` // "11:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// GetCoachScheduleRequest запрос на получение полного расписания тренера
// Если период не указан, используется диапазон по умолчанию от сегодня
type GetCoachScheduleRequest struct {
	CoachID  int64      `json:"coachId"`
	FromDate *time.Time `json:"fromDate,omitempty"` // Начало периода для исключений (опционально)
	ToDate   *time.Time `json:"toDate,omitempty"`   // Конец периода для исключений (опционально)
}

// Response модели

// WeeklyScheduleRuleResponse ответ с правилом недельного расписания
type WeeklyScheduleRuleResponse struct {
	ID          int64  `json:"id"`
	CoachID     int64  `json:"coachId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// RecurringBlockResponse ответ с еженедельной блокировкой
type RecurringBlockResponse struct {
	ID        int64  `json:"id"`
	CoachID   int64  `json:"coachId"`
	Title     string `json:"title"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DateOverrideResponse ответ с исключением на дату
type DateOverrideResponse struct {
	ID           int64   `json:"id"`
	CoachID      int64   `json:"coachId"`
	OverrideDate string  `json:"overrideDate"` // "2026-03-04"
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	OverrideType string  `json:"overrideType"`
	Title        *string `json:"title,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// CoachScheduleResponse полное расписание тренера для staff-панели
type CoachScheduleResponse struct {
	CoachID         int64                         `json:"coachId"`
	CoachName       string                        `json:"coachName"`
	WeeklySchedules []*WeeklyScheduleRuleResponse `json:"weeklySchedules"`
	RecurringBlocks []*RecurringBlockResponse     `json:"recurringBlocks"`
	DateOverrides   []*DateOverrideResponse       `json:"dateOverrides"`
}

// Конвертеры domain → response

// FromDomainWeeklyScheduleRule конвертирует правило расписания в response модель
func FromDomainWeeklyScheduleRule(rule *domain.WeeklyScheduleRule) *WeeklyScheduleRuleResponse {
	return &WeeklyScheduleRuleResponse{
		ID:          rule.ID,
		CoachID:     rule.CoachID,
		DayOfWeek:   rule.DayOfWeek,
		StartTime:   rule.StartTime.String(),
		EndTime:     rule.EndTime.String(),
		IsAvailable: rule.IsAvailable,
		CreatedAt:   rule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   rule.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainWeeklyScheduleRules конвертирует список правил расписания
func FromDomainWeeklyScheduleRules(rules []*domain.WeeklyScheduleRule) []*WeeklyScheduleRuleResponse {
	result := make([]*WeeklyScheduleRuleResponse, 0, len(rules))
	for _, rule := range rules {
		result = append(result, FromDomainWeeklyScheduleRule(rule))
	}
	return result
}

// FromDomainRecurringBlock конвертирует блокировку в response модель
func FromDomainRecurringBlock(block *domain.RecurringBlock) *RecurringBlockResponse {
	return &RecurringBlockResponse{
		ID:        block.ID,
		CoachID:   block.CoachID,
		Title:     block.Title,
		DayOfWeek: block.DayOfWeek,
		StartTime: block.StartTime.String(),
		EndTime:   block.EndTime.String(),
		CreatedAt: block.CreatedAt.Format(time.RFC3339),
		UpdatedAt: block.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainRecurringBlocks конвертирует список блокировок
func FromDomainRecurringBlocks(blocks []*domain.RecurringBlock) []*RecurringBlockResponse {
	result := make([]*RecurringBlockResponse, 0, len(blocks))
	for _, block := range blocks {
		result = append(result, FromDomainRecurringBlock(block))
	}
	return result
}

// FromDomainDateOverride конвертирует исключение на дату в response модель
func FromDomainDateOverride(override *domain.DateOverride) *DateOverrideResponse {
	resp := &DateOverrideResponse{
		ID:           override.ID,
		CoachID:      override.CoachID,
		OverrideDate: override.OverrideDate.Format(domain.DateFormat),
		OverrideType: string(override.OverrideType),
		Title:        override.Title,
		CreatedAt:    override.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    override.UpdatedAt.Format(time.RFC3339),
	}

	if override.StartTime != nil {
		startTime := override.StartTime.String()
		resp.StartTime = &startTime
	}
	if override.EndTime != nil {
		endTime := override.EndTime.String()
		resp.EndTime = &endTime
	}

	return resp
}

// FromDomainDateOverrides конвертирует список исключений
func FromDomainDateOverrides(overrides []*domain.DateOverride) []*DateOverrideResponse {
	result := make([]*DateOverrideResponse, 0, len(overrides))
	for _, override := range overrides {
		result = append(result, FromDomainDateOverride(override))
	}
	return result
}
