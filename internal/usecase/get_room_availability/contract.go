package get_room_availability

import (
	"context"
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// RoomCatalog интерфейс каталога аудиторий
type RoomCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	GetApprovedByRoomInWindow(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.Application, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
