package create_application

import (
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	submitApplication "github.com/univent-hse/Univent-VenueService/internal/usecase/submit_application"
)

// LocationRequest место проведения OFFLINE события
type LocationRequest struct {
	Type       string  `json:"type"` // "dukat" | "custom"
	Tower      *string `json:"tower,omitempty"`
	RoomNumber *string `json:"roomNumber,omitempty"`
	Address    *string `json:"address,omitempty"`
}

// CreateApplicationRequest тело запроса на подачу заявки
type CreateApplicationRequest struct {
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	ExpectedParticipants int              `json:"expectedParticipants"`
	Needs                *string          `json:"needs,omitempty"`
	StartTime            time.Time        `json:"startTime"`
	EndTime              time.Time        `json:"endTime"`
	EventType            string           `json:"eventType"` // "ONLINE" | "OFFLINE"
	Location             *LocationRequest `json:"location,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateApplicationRequest) ToUseCaseRequest(principal domain.Principal) *submitApplication.Request {
	req := &submitApplication.Request{
		Principal:            principal,
		Title:                r.Title,
		Description:          r.Description,
		ExpectedParticipants: r.ExpectedParticipants,
		Needs:                r.Needs,
		StartTime:            r.StartTime,
		EndTime:              r.EndTime,
		EventType:            r.EventType,
	}

	if r.Location != nil {
		req.Location = &submitApplication.LocationInput{
			Type:       r.Location.Type,
			Tower:      r.Location.Tower,
			RoomNumber: r.Location.RoomNumber,
			Address:    r.Location.Address,
		}
	}

	return req
}
