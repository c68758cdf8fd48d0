package moderate_application

import (
	"context"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	moderateApplication "github.com/univent-hse/Univent-VenueService/internal/usecase/moderate_application"
)

type ModerateApplicationUseCase interface {
	Execute(ctx context.Context, req *moderateApplication.Request) (*domain.Application, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
