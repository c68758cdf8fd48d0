package public_events

import (
	"errors"
	"net/http"
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/api/handlers"
	"github.com/univent-hse/Univent-VenueService/internal/domain"
	"github.com/univent-hse/Univent-VenueService/internal/service/applications"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "дата окончания раньше даты начала"
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

// Handle GET /api/v1/events?startDate=2026-09-01&endDate=2026-09-30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var from, to *time.Time

	if s := query.Get("startDate"); s != "" {
		parsed, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			h.logger.Warn("GET /events - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = &parsed
	}

	if s := query.Get("endDate"); s != "" {
		parsed, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			h.logger.Warn("GET /events - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		// endDate включительно - окно закрывается в конце дня
		endOfDay := parsed.AddDate(0, 0, 1).Add(-time.Second)
		to = &endOfDay
	}

	result, err := h.service.PublicCalendar(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrInvalidInput):
			h.logger.Warn("GET /events - Invalid date range")
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /events - Failed to get public calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events - Listed %d approved events", len(result.Applications))
	handlers.RespondJSON(w, http.StatusOK, result)
}
