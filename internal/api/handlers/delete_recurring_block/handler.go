package delete_recurring_block

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
	msgInvalidCoachID = "некорректный ID тренера"
	msgInvalidBlockID = "некорректный ID блокировки"
	msgMissingStaffID = "отсутствует ID сотрудника"
	msgBlockNotFound  = "блокировка не найдена"
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

// Handle DELETE /api/v1/coaches/{coachId}/recurring-blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/recurring-blocks/{blockId} - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/recurring-blocks/{blockId} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /coaches/{id}/recurring-blocks/{blockId} - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	if err := h.service.DeleteRecurringBlock(r.Context(), coachID, blockID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("DELETE /coaches/{id}/recurring-blocks/{blockId} - Block not found: coach_id=%d, block_id=%d",
				coachID, blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /coaches/{id}/recurring-blocks/{blockId} - Invalid input: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondBadRequest(w, msgInvalidBlockID)

		default:
			h.logger.Error("DELETE /coaches/{id}/recurring-blocks/{blockId} - Failed to delete block: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /coaches/{id}/recurring-blocks/{blockId} - Block deleted: coach_id=%d, block_id=%d, staff_id=%d",
		coachID, blockID, staffID)
	w.WriteHeader(http.StatusNoContent)
}
