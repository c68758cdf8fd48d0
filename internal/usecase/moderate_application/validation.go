package moderate_application

import (
	"fmt"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// validateRequest проверяет решение модерации до открытия транзакции
func validateRequest(req *Request) (domain.ApplicationStatus, error) {
	if req.ApplicationID <= 0 {
		return "", fmt.Errorf("%w: application id must be positive", ErrInvalidInput)
	}

	status := domain.ApplicationStatus(req.Status)
	switch status {
	case domain.StatusApproved, domain.StatusRejected:
	default:
		return "", fmt.Errorf("%w: status must be 'approved' or 'rejected', got %q", ErrInvalidInput, req.Status)
	}

	if status == domain.StatusApproved && req.AssignedRoomID == nil {
		return "", ErrRoomRequired
	}
	if status == domain.StatusRejected && req.AssignedRoomID != nil {
		return "", fmt.Errorf("%w: a rejected application cannot have an assigned room", ErrInvalidInput)
	}

	if req.CuratorComment != nil && len(*req.CuratorComment) > domain.MaxCommentLength {
		return "", fmt.Errorf("%w: curator comment is longer than %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return status, nil
}
