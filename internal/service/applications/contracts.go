package applications

import (
	"context"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	GetWithFilter(ctx context.Context, filter domain.ApplicationsFilter) ([]*domain.Application, error)
	GetApprovedInWindow(ctx context.Context, window domain.CalendarWindow) ([]*domain.Application, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
