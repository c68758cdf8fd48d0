package get_application

import (
	"context"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	"github.com/univent-hse/Univent-VenueService/internal/service/applications/models"
)

type ApplicationService interface {
	GetByID(ctx context.Context, id int64, principal domain.Principal) (*models.ApplicationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
