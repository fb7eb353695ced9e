package delete_weekly_schedule

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
	msgInvalidCoachID   = "некорректный ID тренера"
	msgInvalidDayOfWeek = "некорректный день недели, ожидается число от 0 до 6"
	msgMissingStaffID   = "отсутствует ID сотрудника"
	msgRuleNotFound     = "правило расписания не найдено"
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

// Handle DELETE /api/v1/coaches/{coachId}/weekly-schedules/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/weekly-schedules/{day} - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	dayOfWeek, err := strconv.Atoi(vars["dayOfWeek"])
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/weekly-schedules/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /coaches/{id}/weekly-schedules/{day} - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	if err := h.service.DeleteWeeklyScheduleRule(r.Context(), coachID, dayOfWeek); err != nil {
		switch {
		case errors.Is(err, schedule.ErrRuleNotFound):
			h.logger.Warn("DELETE /coaches/{id}/weekly-schedules/{day} - Rule not found: coach_id=%d, day=%d",
				coachID, dayOfWeek)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /coaches/{id}/weekly-schedules/{day} - Invalid input: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("DELETE /coaches/{id}/weekly-schedules/{day} - Failed to delete rule: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /coaches/{id}/weekly-schedules/{day} - Rule deleted: coach_id=%d, day=%d, staff_id=%d",
		coachID, dayOfWeek, staffID)
	w.WriteHeader(http.StatusNoContent)
}
