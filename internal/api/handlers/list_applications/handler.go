package list_applications

import (
	"errors"
	"net/http"

	"github.com/univent-hse/Univent-VenueService/internal/api/handlers"
	"github.com/univent-hse/Univent-VenueService/internal/api/middleware"
	"github.com/univent-hse/Univent-VenueService/internal/service/applications"
)

const (
	msgMissingPrincipal = "требуется авторизация"
	msgInvalidStatus    = "некорректный статус заявки, ожидается pending, approved или rejected"
)

type Handler struct {
	service ApplicationService
	logger  Logger
}

func NewHandler(service ApplicationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/applications?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /applications - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), principal, status)
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrInvalidInput):
			h.logger.Warn("GET /applications - Invalid status filter: user_id=%d", principal.ID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /applications - Failed to list applications: user_id=%d, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /applications - Listed %d applications: user_id=%d", len(result.Applications), principal.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
