package submit_application

import (
	"fmt"
	"strings"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// validateRequest проверяет поля запроса, не требующие обращения к каталогу.
// Форма location проверяется один раз здесь - после сохранения она не
// перепроверяется.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is longer than %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if req.ExpectedParticipants < domain.MinParticipants {
		return fmt.Errorf("%w: expectedParticipants must be at least %d", ErrInvalidInput, domain.MinParticipants)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	eventType := domain.EventType(req.EventType)
	if !eventType.IsValid() {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, req.EventType)
	}

	return validateLocationShape(eventType, req.Location)
}

// validateLocationShape проверяет инвариант формы location:
// ONLINE - location отсутствует, OFFLINE - ровно один из вариантов dukat/custom
func validateLocationShape(eventType domain.EventType, loc *LocationInput) error {
	if eventType == domain.EventTypeOnline {
		if loc != nil {
			return fmt.Errorf("%w: location must not be provided for an ONLINE event", ErrInvalidLocation)
		}
		return nil
	}

	// OFFLINE
	if loc == nil {
		return fmt.Errorf("%w: location is required for an OFFLINE event", ErrInvalidLocation)
	}

	switch domain.LocationType(loc.Type) {
	case domain.LocationTypeDukat:
		if loc.Tower == nil || !domain.Tower(*loc.Tower).IsValid() {
			return fmt.Errorf("%w: dukat location must specify tower 'F' or 'B'", ErrInvalidLocation)
		}
		if loc.RoomNumber == nil || strings.TrimSpace(*loc.RoomNumber) == "" {
			return fmt.Errorf("%w: dukat location must specify a room number", ErrInvalidLocation)
		}
	case domain.LocationTypeCustom:
		if loc.Address == nil || strings.TrimSpace(*loc.Address) == "" {
			return fmt.Errorf("%w: custom location must specify a non-empty address", ErrInvalidLocation)
		}
	default:
		return fmt.Errorf("%w: location type must be 'dukat' or 'custom'", ErrInvalidLocation)
	}

	return nil
}

// toDomainLocation собирает доменный location из провалидированного ввода
func toDomainLocation(eventType domain.EventType, loc *LocationInput) *domain.Location {
	if eventType == domain.EventTypeOnline || loc == nil {
		return nil
	}

	out := &domain.Location{Type: domain.LocationType(loc.Type)}
	switch out.Type {
	case domain.LocationTypeDukat:
		tower := domain.Tower(*loc.Tower)
		out.Tower = &tower
		out.RoomNumber = loc.RoomNumber
	case domain.LocationTypeCustom:
		out.Address = loc.Address
	}
	return out
}
