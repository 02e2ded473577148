// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type contextKey string

const (
	// UserIDHeader заголовок с ID сотрудника, проставляется внешним шлюзом авторизации
	UserIDHeader = "X-User-ID"

	userIDKey contextKey = "userID"

	msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"
)

// Auth проверяет наличие X-User-ID и кладёт его в контекст.
// Сам заголовок не проверяется: авторизация выполняется до сервиса.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUserID кладёт ID сотрудника в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID достаёт ID сотрудника из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
