package moderate_application

import "github.com/univent-hse/Univent-VenueService/internal/domain"

// Request модель запроса на модерацию заявки
type Request struct {
	Principal      domain.Principal
	ApplicationID  int64
	Status         string // "approved" | "rejected"
	AssignedRoomID *int64 // обязателен при approved, запрещен при rejected
	CuratorComment *string
}
