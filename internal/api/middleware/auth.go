package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// Auth проверяет заголовок X-Admin-ID и кладёт идентификатор
// администратора в контекст запроса. Запросы без валидного заголовка
// отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-Admin-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-Admin-ID")
			return
		}

		adminID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || adminID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-Admin-ID")
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID достает идентификатор администратора из контекста.
// Второе значение false означает, что запрос не прошёл через Auth.
func GetAdminID(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(adminIDKey).(int64)
	return adminID, ok
}
