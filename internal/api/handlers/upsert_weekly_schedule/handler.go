package upsert_weekly_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lengolf/LG-CoachingService/internal/api/handlers"
	"github.com/lengolf/LG-CoachingService/internal/api/middleware"
	"github.com/lengolf/LG-CoachingService/internal/service/schedule"
)

const (
	msgInvalidCoachID     = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные данные правила расписания"
	msgMissingStaffID     = "отсутствует ID сотрудника"
	msgCoachNotFound      = "тренер не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/coaches/{coachId}/weekly-schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /coaches/{id}/weekly-schedules - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PUT /coaches/{id}/weekly-schedules - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req UpsertWeeklyScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /coaches/{id}/weekly-schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertWeeklyScheduleRule(r.Context(), req.ToServiceRequest(coachID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrCoachNotFound):
			h.logger.Warn("PUT /coaches/{id}/weekly-schedules - Coach not found: coach_id=%d, staff_id=%d",
				coachID, staffID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /coaches/{id}/weekly-schedules - Invalid time range: coach_id=%d, %s-%s",
				coachID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /coaches/{id}/weekly-schedules - Invalid input: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /coaches/{id}/weekly-schedules - Failed to upsert rule: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /coaches/{id}/weekly-schedules - Rule saved: rule_id=%d, coach_id=%d, staff_id=%d",
		result.ID, coachID, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
