package get_available_rooms

import (
	"context"
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// RoomCatalog интерфейс каталога аудиторий
type RoomCatalog interface {
	GetByTower(ctx context.Context, tower domain.Tower) ([]*domain.Room, error)
}

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	RoomIDsWithApprovedOverlap(ctx context.Context, roomIDs []int64, start, end time.Time) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
