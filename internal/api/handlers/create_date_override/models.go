package create_date_override

import (
	"time"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	createDateOverride "github.com/lengolf/LG-CoachingService/internal/usecase/create_date_override"
)

// CreateDateOverrideRequest HTTP request model
type CreateDateOverrideRequest struct {
	OverrideDate string  `json:"overrideDate"` // "2026-03-04"
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	OverrideType string  `json:"overrideType"` // available | unavailable | custom
	Title        *string `json:"title,omitempty"`
}

// DateOverrideResponse HTTP response model
type DateOverrideResponse struct {
	ID           int64   `json:"id"`
	CoachID      int64   `json:"coachId"`
	OverrideDate string  `json:"overrideDate"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	OverrideType string  `json:"overrideType"`
	Title        *string `json:"title,omitempty"`
	Replaced     int64   `json:"replaced"` // Количество вытесненных пересекающихся исключений
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateDateOverrideRequest) ToUseCaseRequest(coachID int64) (*createDateOverride.Request, error) {
	overrideDate, err := time.Parse(domain.DateFormat, r.OverrideDate)
	if err != nil {
		return nil, err
	}

	return &createDateOverride.Request{
		CoachID:      coachID,
		OverrideDate: overrideDate,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		OverrideType: r.OverrideType,
		Title:        r.Title,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createDateOverride.Response) *DateOverrideResponse {
	result := &DateOverrideResponse{
		ID:           resp.ID,
		CoachID:      resp.CoachID,
		OverrideDate: resp.OverrideDate.Format(domain.DateFormat),
		OverrideType: resp.OverrideType,
		Title:        resp.Title,
		Replaced:     resp.Replaced,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.StartTime != nil {
		startTime := resp.StartTime.String()
		result.StartTime = &startTime
	}
	if resp.EndTime != nil {
		endTime := resp.EndTime.String()
		result.EndTime = &endTime
	}

	return result
}
