package public_events

import (
	"context"
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/service/applications/models"
)

type ApplicationService interface {
	PublicCalendar(ctx context.Context, from, to *time.Time) (*models.ApplicationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
