package create_application

import (
	"context"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	submitApplication "github.com/univent-hse/Univent-VenueService/internal/usecase/submit_application"
)

type SubmitApplicationUseCase interface {
	Execute(ctx context.Context, req *submitApplication.Request) (*domain.Application, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
