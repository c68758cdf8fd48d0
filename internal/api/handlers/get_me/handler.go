package get_me

import (
	"errors"
	"net/http"

	"github.com/univent-hse/Univent-VenueService/internal/api/handlers"
	"github.com/univent-hse/Univent-VenueService/internal/api/middleware"
	"github.com/univent-hse/Univent-VenueService/internal/service/auth"
)

const (
	msgMissingPrincipal = "требуется авторизация"
	msgUserNotFound     = "пользователь не найден"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/me - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	user, err := h.service.GetByID(r.Context(), principal.ID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("GET /auth/me - User not found: user_id=%d", principal.ID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /auth/me - Failed to get user: user_id=%d, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainUser(user))
}
