package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/swiftmoving/booking-service/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "invalid or missing admin token"

// AdminAuth проверяет токен административного доступа
// Административные эндпоинты закрыты общим токеном из конфигурации;
// публичные каналы (чат-бот, голосовой AI) ходят без аутентификации
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
