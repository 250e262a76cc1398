package refresh_token

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers/login"
	"github.com/m04kA/SMC-CalendarService/pkg/jwtauth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTokenExpired       = "срок действия refresh токена истек"
	msgInvalidToken       = "некорректный refresh токен"
)

type Handler struct {
	auth   TokenRefresher
	logger Logger
}

func NewHandler(auth TokenRefresher, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Handle POST /api/v1/auth/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.RefreshToken == "" {
		h.logger.Warn("POST /auth/refresh - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pair, err := h.auth.Refresh(req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, jwtauth.ErrTokenExpired):
			h.logger.Warn("POST /auth/refresh - Refresh token expired")
			handlers.RespondUnauthorized(w, msgTokenExpired)

		case errors.Is(err, jwtauth.ErrInvalidToken), errors.Is(err, jwtauth.ErrInvalidTokenType):
			h.logger.Warn("POST /auth/refresh - Invalid refresh token: %v", err)
			handlers.RespondUnauthorized(w, msgInvalidToken)

		default:
			h.logger.Error("POST /auth/refresh - Failed to refresh tokens: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, login.FromTokenPair(pair))
}
