package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/pkg/jwtauth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверное имя пользователя или пароль"
)

type Handler struct {
	auth   Authenticator
	logger Logger
}

func NewHandler(auth Authenticator, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pair, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, jwtauth.ErrInvalidCredentials) {
			h.logger.Warn("POST /auth/login - Invalid credentials for user=%q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/login - Failed to issue tokens: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - User %q logged in", req.Username)
	handlers.RespondJSON(w, http.StatusOK, FromTokenPair(pair))
}
