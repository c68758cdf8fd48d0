package models

import (
	"errors"
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе заявки
	ErrInvalidStatus = errors.New("invalid application status")
)

// LocationResponse tagged представление места проведения OFFLINE события
type LocationResponse struct {
	Type       string  `json:"type"` // "dukat" | "custom"
	Tower      *string `json:"tower,omitempty"`
	RoomNumber *string `json:"roomNumber,omitempty"`
	Address    *string `json:"address,omitempty"`
}

// ApplicationResponse ответ с данными заявки
type ApplicationResponse struct {
	ID                   int64             `json:"id"`
	OrganizerID          int64             `json:"organizerId"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	ExpectedParticipants int               `json:"expectedParticipants"`
	Needs                *string           `json:"needs,omitempty"`
	StartTime            time.Time         `json:"startTime"`
	EndTime              time.Time         `json:"endTime"`
	EventType            string            `json:"eventType"`
	Location             *LocationResponse `json:"location,omitempty"`
	Status               string            `json:"status"`
	AssignedRoomID       *int64            `json:"assignedRoomId,omitempty"`
	CuratorComment       *string           `json:"curatorComment,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// ApplicationListResponse ответ со списком заявок
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

// FromDomainApplication конвертирует domain модель в DTO
func FromDomainApplication(a *domain.Application) *ApplicationResponse {
	if a == nil {
		return nil
	}

	resp := &ApplicationResponse{
		ID:                   a.ID,
		OrganizerID:          a.OrganizerID,
		Title:                a.Title,
		Description:          a.Description,
		ExpectedParticipants: a.ExpectedParticipants,
		Needs:                a.Needs,
		StartTime:            a.StartTime,
		EndTime:              a.EndTime,
		EventType:            string(a.EventType),
		Status:               string(a.Status),
		AssignedRoomID:       a.AssignedRoomID,
		CuratorComment:       a.CuratorComment,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}

	if a.Location != nil {
		resp.Location = &LocationResponse{
			Type:       string(a.Location.Type),
			Tower:      (*string)(a.Location.Tower),
			RoomNumber: a.Location.RoomNumber,
			Address:    a.Location.Address,
		}
	}

	return resp
}

// FromDomainApplicationList конвертирует список domain моделей в DTO
func FromDomainApplicationList(apps []*domain.Application) *ApplicationListResponse {
	resp := &ApplicationListResponse{
		Applications: make([]ApplicationResponse, 0, len(apps)),
	}

	for _, app := range apps {
		if appResp := FromDomainApplication(app); appResp != nil {
			resp.Applications = append(resp.Applications, *appResp)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ApplicationStatus с валидацией
func ToDomainStatus(status string) (domain.ApplicationStatus, error) {
	s := domain.ApplicationStatus(status)

	switch s {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
