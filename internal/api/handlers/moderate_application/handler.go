package moderate_application

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/univent-hse/Univent-VenueService/internal/api/handlers"
	"github.com/univent-hse/Univent-VenueService/internal/api/middleware"
	"github.com/univent-hse/Univent-VenueService/internal/service/applications/models"
	moderateApplication "github.com/univent-hse/Univent-VenueService/internal/usecase/moderate_application"
)

const (
	msgInvalidApplicationID = "некорректный ID заявки"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingPrincipal     = "требуется авторизация"
	msgForbidden            = "модерация доступна только кураторам"
	msgInvalidInput         = "некорректное решение модерации"
	msgRoomRequired         = "для одобрения заявки необходимо назначить аудиторию"
	msgApplicationNotFound  = "заявка не найдена"
	msgRoomNotFound         = "назначенная аудитория не существует"
	msgRoomConflict         = "аудитория уже занята другим событием в это время"
)

type Handler struct {
	useCase ModerateApplicationUseCase
	logger  Logger
}

func NewHandler(useCase ModerateApplicationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/applications/{applicationId}/moderate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	applicationID, err := strconv.ParseInt(vars["applicationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /applications/{id}/moderate - Invalid application ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApplicationID)
		return
	}

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("PATCH /applications/{id}/moderate - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	var req ModerateApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /applications/{id}/moderate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(principal, applicationID))
	if err != nil {
		switch {
		case errors.Is(err, moderateApplication.ErrAccessDenied):
			h.logger.Warn("PATCH /applications/{id}/moderate - Access denied: user_id=%d, role=%s", principal.ID, principal.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, moderateApplication.ErrRoomRequired):
			h.logger.Warn("PATCH /applications/{id}/moderate - Room required: application_id=%d", applicationID)
			handlers.RespondBadRequest(w, msgRoomRequired)

		case errors.Is(err, moderateApplication.ErrInvalidInput):
			h.logger.Warn("PATCH /applications/{id}/moderate - Invalid input: application_id=%d, error=%v", applicationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, moderateApplication.ErrApplicationNotFound):
			h.logger.Warn("PATCH /applications/{id}/moderate - Application not found: application_id=%d", applicationID)
			handlers.RespondNotFound(w, msgApplicationNotFound)

		// Несуществующая аудитория в решении - ошибка данных решения, не
		// отсутствие ресурса по URL
		case errors.Is(err, moderateApplication.ErrRoomNotFound):
			h.logger.Warn("PATCH /applications/{id}/moderate - Room not found: application_id=%d", applicationID)
			handlers.RespondBadRequest(w, msgRoomNotFound)

		case errors.Is(err, moderateApplication.ErrRoomConflict):
			h.logger.Warn("PATCH /applications/{id}/moderate - Room conflict: application_id=%d", applicationID)
			handlers.RespondConflict(w, msgRoomConflict)

		default:
			h.logger.Error("PATCH /applications/{id}/moderate - Failed to moderate: application_id=%d, error=%v", applicationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /applications/{id}/moderate - Application moderated: application_id=%d, status=%s, moderator_id=%d",
		updated.ID, updated.Status, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainApplication(updated))
}
