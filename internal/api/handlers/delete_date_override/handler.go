package delete_date_override

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
	msgInvalidCoachID    = "некорректный ID тренера"
	msgInvalidOverrideID = "некорректный ID исключения"
	msgMissingStaffID    = "отсутствует ID сотрудника"
	msgOverrideNotFound  = "исключение не найдено"
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

// Handle DELETE /api/v1/coaches/{coachId}/date-overrides/{overrideId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/date-overrides/{overrideId} - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	overrideID, err := strconv.ParseInt(vars["overrideId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/date-overrides/{overrideId} - Invalid override ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /coaches/{id}/date-overrides/{overrideId} - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	if err := h.service.DeleteDateOverride(r.Context(), coachID, overrideID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrOverrideNotFound):
			h.logger.Warn("DELETE /coaches/{id}/date-overrides/{overrideId} - Override not found: coach_id=%d, override_id=%d",
				coachID, overrideID)
			handlers.RespondNotFound(w, msgOverrideNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /coaches/{id}/date-overrides/{overrideId} - Invalid input: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondBadRequest(w, msgInvalidOverrideID)

		default:
			h.logger.Error("DELETE /coaches/{id}/date-overrides/{overrideId} - Failed to delete override: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /coaches/{id}/date-overrides/{overrideId} - Override deleted: coach_id=%d, override_id=%d, staff_id=%d",
		coachID, overrideID, staffID)
	w.WriteHeader(http.StatusNoContent)
}
