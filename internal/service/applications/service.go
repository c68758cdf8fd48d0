package applications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	appRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/application"
	"github.com/univent-hse/Univent-VenueService/internal/service/applications/models"
)

// Service сервис чтения заявок: списки, карточка заявки, публичный календарь.
// Мутации (подача и модерация) живут в отдельных usecase пакетах.
type Service struct {
	appRepo ApplicationRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(appRepo ApplicationRepository, logger Logger) *Service {
	return &Service{
		appRepo: appRepo,
		logger:  logger,
	}
}

// List возвращает заявки, видимые принципалу.
// Организатор (student) видит только свои заявки; куратор и администратор -
// заявки всех организаторов. Опциональный фильтр по статусу доступен всем.
func (s *Service) List(ctx context.Context, principal domain.Principal, status *string) (*models.ApplicationListResponse, error) {
	filter := domain.ApplicationsFilter{}

	if status != nil {
		domainStatus, err := models.ToDomainStatus(*status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s from user=%d", *status, principal.ID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &domainStatus
	}

	if !principal.IsModerator() {
		filter.OrganizerID = &principal.ID
	}

	apps, err := s.appRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", principal.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d applications for user=%d role=%s", len(apps), principal.ID, principal.Role)
	return models.FromDomainApplicationList(apps), nil
}

// GetByID возвращает заявку по ID.
// Организатор может видеть только свою заявку; куратор и администратор - любую.
func (s *Service) GetByID(ctx context.Context, id int64, principal domain.Principal) (*models.ApplicationResponse, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appRepo.ErrApplicationNotFound) {
			s.logger.Warn("GetByID: application id=%d not found", id)
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("GetByID: repository error for application id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !principal.IsModerator() && app.OrganizerID != principal.ID {
		s.logger.Warn("GetByID: access denied for user=%d to application id=%d", principal.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainApplication(app), nil
}

// PublicCalendar возвращает одобренные заявки, пересекающиеся с опциональным
// окном [from, to] (границы включительно). Аутентификация не требуется.
func (s *Service) PublicCalendar(ctx context.Context, from, to *time.Time) (*models.ApplicationListResponse, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	apps, err := s.appRepo.GetApprovedInWindow(ctx, domain.CalendarWindow{From: from, To: to})
	if err != nil {
		s.logger.Error("PublicCalendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: PublicCalendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PublicCalendar: fetched %d approved events", len(apps))
	return models.FromDomainApplicationList(apps), nil
}
