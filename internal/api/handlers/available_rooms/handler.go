package available_rooms

import (
	"errors"
	"net/http"
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/api/handlers"
	"github.com/univent-hse/Univent-VenueService/internal/api/middleware"
	getAvailableRooms "github.com/univent-hse/Univent-VenueService/internal/usecase/get_available_rooms"
)

const (
	msgMissingPrincipal = "требуется авторизация"
	msgInvalidTime      = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?tower=F&startTime=...&endTime=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetPrincipal(r.Context()); !ok {
		h.logger.Warn("GET /rooms/available - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	query := r.URL.Query()

	startTime, err := time.Parse(time.RFC3339, query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid startTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := time.Parse(time.RFC3339, query.Get("endTime"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid endTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableRooms.Request{
		Tower:     query.Get("tower"),
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/available - Failed to get available rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - %d rooms available", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
