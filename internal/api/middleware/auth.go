package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/univent-hse/Univent-VenueService/internal/api/handlers"
	"github.com/univent-hse/Univent-VenueService/internal/domain"
	"github.com/univent-hse/Univent-VenueService/pkg/authtoken"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "невалидный токен авторизации"
)

type principalKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer access токен и кладет Principal в контекст запроса.
// Запросы без валидного токена отклоняются с 401.
func Auth(tokens *authtoken.Manager, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := tokens.ParseAccess(tokenString)
			if err != nil {
				logger.Warn("Auth: invalid token on %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				logger.Warn("Auth: malformed token subject on %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			principal := domain.Principal{
				ID:       userID,
				Role:     domain.Role(claims.Role),
				FullName: claims.FullName,
			}

			ctx := context.WithValue(r.Context(), principalKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal возвращает Principal текущего запроса, если он аутентифицирован
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(domain.Principal)
	return principal, ok
}
