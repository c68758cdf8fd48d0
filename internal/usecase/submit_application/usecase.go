package submit_application

import (
	"context"
	"errors"
	"fmt"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	roomRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/room"
)

// UseCase use case подачи заявки на мероприятие
type UseCase struct {
	appRepo ApplicationRepository
	rooms   RoomCatalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appRepo ApplicationRepository, rooms RoomCatalog, logger Logger) *UseCase {
	return &UseCase{
		appRepo: appRepo,
		rooms:   rooms,
		logger:  logger,
	}
}

// Execute создает заявку со статусом pending.
// Заявки подают только студенты; форма location валидируется здесь один раз,
// dukat-аудитория дополнительно проверяется по каталогу.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Application, error) {
	uc.logger.Info("SubmitApplication: user=%d, title=%q, type=%s, start=%s, end=%s",
		req.Principal.ID, req.Title, req.EventType,
		req.StartTime.Format(domain.DateFormat), req.EndTime.Format(domain.DateFormat))

	// 1. Подача доступна только организаторам (студентам)
	if !domain.RoleAllowed(req.Principal.Role, domain.RoleStudent) {
		uc.logger.Warn("SubmitApplication: access denied for user=%d role=%s", req.Principal.ID, req.Principal.Role)
		return nil, ErrAccessDenied
	}

	// 2. Валидация полей и формы location
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitApplication: validation failed: %v", err)
		return nil, err
	}

	eventType := domain.EventType(req.EventType)
	location := toDomainLocation(eventType, req.Location)

	// 3. Dukat-аудитория должна существовать в каталоге
	if location != nil && location.IsDukat() {
		if _, err := uc.rooms.GetByTowerAndNumber(ctx, *location.Tower, *location.RoomNumber); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("SubmitApplication: unknown dukat room tower=%s number=%s",
					*location.Tower, *location.RoomNumber)
				return nil, fmt.Errorf("%w: unknown dukat room", ErrInvalidLocation)
			}
			uc.logger.Error("SubmitApplication: room catalog error: %v", err)
			return nil, fmt.Errorf("%w: failed to check room: %v", ErrInternal, err)
		}
	}

	// 4. Сохраняем заявку со статусом pending, без назначенной аудитории
	created, err := uc.appRepo.Create(ctx, &domain.Application{
		OrganizerID:          req.Principal.ID,
		Title:                req.Title,
		Description:          req.Description,
		ExpectedParticipants: req.ExpectedParticipants,
		Needs:                req.Needs,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		EventType:            eventType,
		Location:             location,
		Status:               domain.StatusPending,
	})
	if err != nil {
		uc.logger.Error("SubmitApplication: failed to create application: %v", err)
		return nil, fmt.Errorf("%w: failed to create application: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitApplication: created application id=%d for user=%d", created.ID, req.Principal.ID)
	return created, nil
}
