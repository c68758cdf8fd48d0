package get_available_rooms

import (
	"fmt"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// validateRequest проверяет башню и интервал запроса
func validateRequest(req *Request) (domain.Tower, error) {
	tower := domain.Tower(req.Tower)
	if !tower.IsValid() {
		return "", fmt.Errorf("%w: tower must be 'F' or 'B', got %q", ErrInvalidInput, req.Tower)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return "", fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if !req.StartTime.Before(req.EndTime) {
		return "", fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return tower, nil
}
