package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lengolf/LG-CoachingService/internal/api/handlers"
)

type contextKey string

const staffIDKey contextKey = "staffID"

// HeaderStaffID заголовок, через который передается ID сотрудника
const HeaderStaffID = "X-Staff-ID"

// Auth middleware аутентификации сотрудников staff-панели
// Требует валидный заголовок X-Staff-ID и кладет его значение в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffIDStr := r.Header.Get(HeaderStaffID)
		if staffIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+HeaderStaffID)
			return
		}

		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+HeaderStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID извлекает ID сотрудника из контекста запроса
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey).(int64)
	return staffID, ok
}
