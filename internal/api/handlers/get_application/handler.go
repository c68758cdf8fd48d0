package get_application

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/univent-hse/Univent-VenueService/internal/api/handlers"
	"github.com/univent-hse/Univent-VenueService/internal/api/middleware"
	"github.com/univent-hse/Univent-VenueService/internal/service/applications"
)

const (
	msgInvalidApplicationID = "некорректный ID заявки"
	msgMissingPrincipal     = "требуется авторизация"
	msgNotFound             = "заявка не найдена"
	msgForbidden            = "доступ запрещен"
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

// Handle GET /api/v1/applications/{applicationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	applicationID, err := strconv.ParseInt(vars["applicationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /applications/{id} - Invalid application ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApplicationID)
		return
	}

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /applications/{id} - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	app, err := h.service.GetByID(r.Context(), applicationID, principal)
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrApplicationNotFound):
			h.logger.Warn("GET /applications/{id} - Application not found: application_id=%d", applicationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, applications.ErrAccessDenied):
			h.logger.Warn("GET /applications/{id} - Access denied: application_id=%d, user_id=%d", applicationID, principal.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /applications/{id} - Failed to get application: application_id=%d, error=%v", applicationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, app)
}
