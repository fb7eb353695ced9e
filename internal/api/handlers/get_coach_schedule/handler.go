package get_coach_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/lengolf/LG-CoachingService/internal/api/handlers"
	"github.com/lengolf/LG-CoachingService/internal/api/middleware"
	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/internal/service/schedule"
	"github.com/lengolf/LG-CoachingService/internal/service/schedule/models"
)

const (
	msgInvalidCoachID = "некорректный ID тренера"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange   = "некорректный период выборки"
	msgMissingStaffID = "отсутствует ID сотрудника"
	msgCoachNotFound  = "тренер не найден"
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

// Handle GET /api/v1/coaches/{coachId}/schedule?fromDate=YYYY-MM-DD&toDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/schedule - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("GET /coaches/{id}/schedule - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	req := &models.GetCoachScheduleRequest{CoachID: coachID}

	// Опциональный период выборки исключений
	if fromStr := r.URL.Query().Get("fromDate"); fromStr != "" {
		fromDate, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/schedule - Invalid fromDate %q: %v", fromStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.FromDate = &fromDate
	}
	if toStr := r.URL.Query().Get("toDate"); toStr != "" {
		toDate, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/schedule - Invalid toDate %q: %v", toStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.ToDate = &toDate
	}

	result, err := h.service.GetCoachSchedule(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrCoachNotFound):
			h.logger.Warn("GET /coaches/{id}/schedule - Coach not found: coach_id=%d, staff_id=%d", coachID, staffID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /coaches/{id}/schedule - Invalid input: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /coaches/{id}/schedule - Failed to get schedule: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/schedule - Schedule fetched: coach_id=%d, staff_id=%d", coachID, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
