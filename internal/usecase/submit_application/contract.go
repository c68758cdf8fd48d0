package submit_application

import (
	"context"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
}

// RoomCatalog интерфейс каталога аудиторий
type RoomCatalog interface {
	GetByTowerAndNumber(ctx context.Context, tower domain.Tower, number string) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
