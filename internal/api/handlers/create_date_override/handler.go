package create_date_override

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lengolf/LG-CoachingService/internal/api/handlers"
	"github.com/lengolf/LG-CoachingService/internal/api/middleware"
	createDateOverride "github.com/lengolf/LG-CoachingService/internal/usecase/create_date_override"
)

const (
	msgInvalidCoachID     = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные данные исключения"
	msgMissingStaffID     = "отсутствует ID сотрудника"
	msgCoachNotFound      = "тренер не найден"
)

type Handler struct {
	useCase CreateDateOverrideUseCase
	logger  Logger
}

func NewHandler(useCase CreateDateOverrideUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/coaches/{coachId}/date-overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /coaches/{id}/date-overrides - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("POST /coaches/{id}/date-overrides - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req CreateDateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches/{id}/date-overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(coachID)
	if err != nil {
		h.logger.Warn("POST /coaches/{id}/date-overrides - Invalid override date %q: %v", req.OverrideDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createDateOverride.ErrCoachNotFound):
			h.logger.Warn("POST /coaches/{id}/date-overrides - Coach not found: coach_id=%d, staff_id=%d",
				coachID, staffID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, createDateOverride.ErrInvalidTimeRange):
			h.logger.Warn("POST /coaches/{id}/date-overrides - Invalid time range: coach_id=%d", coachID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createDateOverride.ErrInvalidInput):
			h.logger.Warn("POST /coaches/{id}/date-overrides - Invalid input: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /coaches/{id}/date-overrides - Failed to create override: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches/{id}/date-overrides - Override created: override_id=%d, coach_id=%d, staff_id=%d, replaced=%d",
		result.ID, coachID, staffID, result.Replaced)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
