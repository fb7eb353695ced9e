package create_recurring_block

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
	msgInvalidInput       = "некорректные данные блокировки"
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

// Handle POST /api/v1/coaches/{coachId}/recurring-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /coaches/{id}/recurring-blocks - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("POST /coaches/{id}/recurring-blocks - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req CreateRecurringBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches/{id}/recurring-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRecurringBlock(r.Context(), req.ToServiceRequest(coachID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrCoachNotFound):
			h.logger.Warn("POST /coaches/{id}/recurring-blocks - Coach not found: coach_id=%d, staff_id=%d",
				coachID, staffID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("POST /coaches/{id}/recurring-blocks - Invalid time range: coach_id=%d, %s-%s",
				coachID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /coaches/{id}/recurring-blocks - Invalid input: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /coaches/{id}/recurring-blocks - Failed to create block: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches/{id}/recurring-blocks - Block created: block_id=%d, coach_id=%d, staff_id=%d",
		result.ID, coachID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
