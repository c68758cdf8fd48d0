package moderate_application

import (
	"github.com/univent-hse/Univent-VenueService/internal/domain"
	moderateApplication "github.com/univent-hse/Univent-VenueService/internal/usecase/moderate_application"
)

// ModerateApplicationRequest тело запроса решения модерации
type ModerateApplicationRequest struct {
	Status         string  `json:"status"` // "approved" | "rejected"
	AssignedRoomID *int64  `json:"assignedRoomId,omitempty"`
	CuratorComment *string `json:"curatorComment,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ModerateApplicationRequest) ToUseCaseRequest(principal domain.Principal, applicationID int64) *moderateApplication.Request {
	return &moderateApplication.Request{
		Principal:      principal,
		ApplicationID:  applicationID,
		Status:         r.Status,
		AssignedRoomID: r.AssignedRoomID,
		CuratorComment: r.CuratorComment,
	}
}
