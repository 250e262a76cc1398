package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/pkg/jwtauth"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "некорректный токен"
	msgTokenExpired = "срок действия токена истек"
)

type contextKey string

const subjectKey contextKey = "subject"

// TokenVerifier проверяет access токен и возвращает имя пользователя
type TokenVerifier interface {
	VerifyAccess(accessToken string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет заголовок Authorization: Bearer <access token>
// и кладет имя пользователя в контекст запроса
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Warn("Auth: missing bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			subject, err := verifier.VerifyAccess(token)
			if err != nil {
				logger.Warn("Auth: token rejected for %s %s: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, jwtauth.ErrTokenExpired) {
					handlers.RespondUnauthorized(w, msgTokenExpired)
				} else {
					handlers.RespondUnauthorized(w, msgInvalidToken)
				}
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject возвращает имя авторизованного пользователя из контекста
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
