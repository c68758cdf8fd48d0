package submit_application

import (
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// LocationInput место проведения OFFLINE события, как его прислал клиент
type LocationInput struct {
	Type       string  // "dukat" | "custom"
	Tower      *string // для dukat: "F" | "B"
	RoomNumber *string // для dukat
	Address    *string // для custom
}

// Request модель запроса на подачу заявки
type Request struct {
	Principal            domain.Principal
	Title                string
	Description          string
	ExpectedParticipants int
	Needs                *string
	StartTime            time.Time
	EndTime              time.Time
	EventType            string // "ONLINE" | "OFFLINE"
	Location             *LocationInput
}
