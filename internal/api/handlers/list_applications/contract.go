package list_applications

import (
	"context"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	"github.com/univent-hse/Univent-VenueService/internal/service/applications/models"
)

type ApplicationService interface {
	List(ctx context.Context, principal domain.Principal, status *string) (*models.ApplicationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
