package moderate_application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	appRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/application"
	roomRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/room"
)

// notifyTimeout ограничивает фоновую отправку уведомления организатору
const notifyTimeout = 10 * time.Second

// UseCase use case модерации заявки куратором.
//
// Проверка занятости аудитории и запись решения выполняются в одной
// SERIALIZABLE транзакции, поэтому две параллельные модерации не могут
// одобрить пересекающиеся события в одну аудиторию: одна из транзакций
// либо увидит чужую одобренную заявку, либо упадет с serialization
// failure и будет повторена менеджером транзакций.
type UseCase struct {
	appRepo   ApplicationRepository
	rooms     RoomCatalog
	txManager TxManager
	notifier  Notifier
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appRepo ApplicationRepository,
	rooms RoomCatalog,
	txManager TxManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appRepo:   appRepo,
		rooms:     rooms,
		txManager: txManager,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute применяет решение модерации к заявке и возвращает обновленную заявку.
// Повторная модерация разрешена из любого статуса; при повторном одобрении
// собственный интервал заявки не считается конфликтом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Application, error) {
	uc.logger.Info("ModerateApplication: moderator=%d, application=%d, status=%s",
		req.Principal.ID, req.ApplicationID, req.Status)

	// 1. Модерация доступна только кураторам и админам
	if !domain.RoleAllowed(req.Principal.Role, domain.ModeratorRoles...) {
		uc.logger.Warn("ModerateApplication: access denied for user=%d role=%s",
			req.Principal.ID, req.Principal.Role)
		return nil, ErrAccessDenied
	}

	// 2. Валидация решения
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ModerateApplication: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверка занятости и запись решения в одной транзакции
	var updated *domain.Application
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		app, err := uc.appRepo.GetByID(txCtx, req.ApplicationID)
		if err != nil {
			if errors.Is(err, appRepo.ErrApplicationNotFound) {
				return ErrApplicationNotFound
			}
			return fmt.Errorf("%w: failed to get application: %v", ErrInternal, err)
		}

		if status == domain.StatusApproved {
			if err := uc.checkRoomAvailability(txCtx, app, *req.AssignedRoomID); err != nil {
				return err
			}
		}

		updated, err = uc.appRepo.UpdateModeration(txCtx, app.ID, status, req.AssignedRoomID, req.CuratorComment)
		if err != nil {
			return fmt.Errorf("%w: failed to update application: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		// Ошибки домена пробрасываем как есть, остальное прячем за ErrInternal
		switch {
		case errors.Is(err, ErrApplicationNotFound),
			errors.Is(err, ErrRoomNotFound),
			errors.Is(err, ErrRoomConflict),
			errors.Is(err, ErrInternal):
			return nil, err
		default:
			uc.logger.Error("ModerateApplication: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("ModerateApplication: application id=%d moderated to status=%s by user=%d",
		updated.ID, updated.Status, req.Principal.ID)

	// 4. Уведомление организатора - best-effort, одна попытка в фоне.
	// Ошибка доставки не влияет на результат модерации.
	go func(app *domain.Application) {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.NotifyStatusChange(notifyCtx, app); err != nil {
			uc.logger.Warn("ModerateApplication: failed to notify organizer of application id=%d: %v", app.ID, err)
		}
	}(updated)

	return updated, nil
}

// checkRoomAvailability проверяет существование аудитории и отсутствие
// одобренного события в пересекающемся интервале. Вызывается внутри транзакции.
func (uc *UseCase) checkRoomAvailability(ctx context.Context, app *domain.Application, roomID int64) error {
	room, err := uc.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return fmt.Errorf("%w: room id=%d", ErrRoomNotFound, roomID)
		}
		return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	conflict, err := uc.appRepo.FindApprovedConflict(ctx, room.ID, app.StartTime, app.EndTime, app.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to check room availability: %v", ErrInternal, err)
	}
	if conflict != nil {
		uc.logger.Warn("ModerateApplication: room id=%d is busy, application id=%d conflicts with id=%d",
			room.ID, app.ID, conflict.ID)
		return fmt.Errorf("%w: room %s (%s) is taken by application id=%d",
			ErrRoomConflict, room.Number, room.Tower, conflict.ID)
	}

	return nil
}
