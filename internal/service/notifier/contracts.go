package notifier

import (
	"context"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RoomCatalog интерфейс каталога аудиторий
type RoomCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// MessageSender интерфейс отправки сообщений (Telegram Bot API)
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Translator интерфейс локализации текстов уведомлений
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
