package get_week_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/lengolf/LG-CoachingService/internal/api/handlers"
	"github.com/lengolf/LG-CoachingService/internal/domain"
	getWeekAvailability "github.com/lengolf/LG-CoachingService/internal/usecase/get_week_availability"
)

const (
	msgInvalidCoachID   = "некорректный ID тренера"
	msgInvalidStartDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCoachNotFound    = "тренер не найден"
)

type Handler struct {
	useCase GetWeekAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/availability/week?startDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем coachId из URL
	vars := mux.Vars(r)
	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/availability/week - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	// startDate опционален: без него показываем текущую неделю
	startDate := time.Now()
	if startDateStr := r.URL.Query().Get("startDate"); startDateStr != "" {
		startDate, err = time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/availability/week - Invalid start date %q: %v", startDateStr, err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekAvailability.Request{
		CoachID:   coachID,
		StartDate: startDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekAvailability.ErrCoachNotFound):
			h.logger.Warn("GET /coaches/{id}/availability/week - Coach not found: coach_id=%d", coachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		case errors.Is(err, getWeekAvailability.ErrInvalidInput):
			h.logger.Warn("GET /coaches/{id}/availability/week - Invalid input: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidCoachID)

		default:
			h.logger.Error("GET /coaches/{id}/availability/week - Failed to resolve availability: coach_id=%d, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/availability/week - Resolved week %s for coach_id=%d",
		result.WeekStart.Format(domain.DateFormat), coachID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
