package get_me

import (
	"context"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

type AuthService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
