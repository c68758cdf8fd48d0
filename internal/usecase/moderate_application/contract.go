package moderate_application

import (
	"context"
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	FindApprovedConflict(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (*domain.Application, error)
	UpdateModeration(ctx context.Context, id int64, status domain.ApplicationStatus, roomID *int64, comment *string) (*domain.Application, error)
}

// RoomCatalog интерфейс каталога аудиторий
type RoomCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс сервиса уведомлений организатора
type Notifier interface {
	NotifyStatusChange(ctx context.Context, app *domain.Application) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
