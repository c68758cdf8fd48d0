package create_application

import (
	"errors"
	"net/http"

	"github.com/univent-hse/Univent-VenueService/internal/api/handlers"
	"github.com/univent-hse/Univent-VenueService/internal/api/middleware"
	"github.com/univent-hse/Univent-VenueService/internal/service/applications/models"
	submitApplication "github.com/univent-hse/Univent-VenueService/internal/usecase/submit_application"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPrincipal   = "требуется авторизация"
	msgForbidden          = "заявки могут подавать только студенты"
	msgInvalidInput       = "некорректные данные заявки"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidLocation    = "некорректное место проведения"
)

type Handler struct {
	useCase SubmitApplicationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitApplicationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/applications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("POST /applications - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	var req CreateApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /applications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(principal))
	if err != nil {
		switch {
		case errors.Is(err, submitApplication.ErrAccessDenied):
			h.logger.Warn("POST /applications - Access denied: user_id=%d, role=%s", principal.ID, principal.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitApplication.ErrInvalidTimeRange):
			h.logger.Warn("POST /applications - Invalid time range: user_id=%d", principal.ID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, submitApplication.ErrInvalidLocation):
			h.logger.Warn("POST /applications - Invalid location: user_id=%d, error=%v", principal.ID, err)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		case errors.Is(err, submitApplication.ErrInvalidInput):
			h.logger.Warn("POST /applications - Invalid input: user_id=%d, error=%v", principal.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /applications - Failed to create application: user_id=%d, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /applications - Application created: application_id=%d, user_id=%d", created.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainApplication(created))
}
