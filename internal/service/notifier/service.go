package notifier

import (
	"context"
	"fmt"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// Ключи сообщений в каталоге переводов
const (
	keyApproved       = "notification_approved"
	keyApprovedNoRoom = "notification_approved_no_room"
	keyRejected       = "notification_rejected"
	keyComment        = "notification_comment"
)

// Service отправляет организатору уведомление о решении по его заявке.
// Доставка best-effort: одна попытка, любая ошибка логируется и не
// поднимается к вызывающему коду.
type Service struct {
	userRepo   UserRepository
	rooms      RoomCatalog
	sender     MessageSender
	translator Translator
	logger     Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	userRepo UserRepository,
	rooms RoomCatalog,
	sender MessageSender,
	translator Translator,
	logger Logger,
) *Service {
	return &Service{
		userRepo:   userRepo,
		rooms:      rooms,
		sender:     sender,
		translator: translator,
		logger:     logger,
	}
}

// NotifyStatusChange уведомляет организатора заявки о смене статуса.
// Если у организатора не привязан Telegram, уведомление молча пропускается.
func (s *Service) NotifyStatusChange(ctx context.Context, app *domain.Application) error {
	organizer, err := s.userRepo.GetByID(ctx, app.OrganizerID)
	if err != nil {
		return fmt.Errorf("notifier: failed to get organizer id=%d: %w", app.OrganizerID, err)
	}

	if organizer.TelegramChatID == nil {
		s.logger.Info("NotifyStatusChange: organizer id=%d has no telegram binding, skipping", organizer.ID)
		return nil
	}

	text, err := s.buildText(ctx, app, organizer.Locale)
	if err != nil {
		return err
	}

	if err := s.sender.SendMessage(ctx, *organizer.TelegramChatID, text); err != nil {
		return fmt.Errorf("notifier: failed to send message to chat_id=%d: %w", *organizer.TelegramChatID, err)
	}

	s.logger.Info("NotifyStatusChange: notified organizer id=%d about application id=%d status=%s",
		organizer.ID, app.ID, app.Status)
	return nil
}

func (s *Service) buildText(ctx context.Context, app *domain.Application, locale string) (string, error) {
	var text string

	switch app.Status {
	case domain.StatusApproved:
		if app.AssignedRoomID == nil {
			text = s.translator.T(locale, keyApprovedNoRoom, map[string]any{"Title": app.Title})
			break
		}
		room, err := s.rooms.GetByID(ctx, *app.AssignedRoomID)
		if err != nil {
			return "", fmt.Errorf("notifier: failed to resolve room id=%d: %w", *app.AssignedRoomID, err)
		}
		text = s.translator.T(locale, keyApproved, map[string]any{
			"Title": app.Title,
			"Room":  room.Number,
			"Tower": string(room.Tower),
		})
	case domain.StatusRejected:
		text = s.translator.T(locale, keyRejected, map[string]any{"Title": app.Title})
	default:
		return "", fmt.Errorf("notifier: no notification defined for status %q", app.Status)
	}

	if app.CuratorComment != nil && *app.CuratorComment != "" {
		text += "\n" + s.translator.T(locale, keyComment, map[string]any{"Comment": *app.CuratorComment})
	}

	return text, nil
}
