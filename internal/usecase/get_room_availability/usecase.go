package get_room_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	roomRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/room"
)

// UseCase use case расписания занятости одной аудитории на день:
// одобренные события, начинающиеся в запрошенную дату
type UseCase struct {
	rooms   RoomCatalog
	appRepo ApplicationRepository
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rooms RoomCatalog, appRepo ApplicationRepository, logger Logger) *UseCase {
	return &UseCase{
		rooms:   rooms,
		appRepo: appRepo,
		logger:  logger,
	}
}

// Execute возвращает занятые интервалы аудитории в пределах суток [Date, Date+24h)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: room id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	room, err := uc.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	dayStart := req.Date
	dayEnd := dayStart.AddDate(0, 0, 1)

	apps, err := uc.appRepo.GetApprovedByRoomInWindow(ctx, room.ID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetRoomAvailability: failed to get bookings for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:        dayStart.Format(domain.DateFormat),
		BookedSlots: make([]BookedSlot, 0, len(apps)),
	}
	for _, app := range apps {
		resp.BookedSlots = append(resp.BookedSlots, BookedSlot{
			StartTime: app.StartTime,
			EndTime:   app.EndTime,
		})
	}

	uc.logger.Info("GetRoomAvailability: room id=%d has %d booked slots on %s",
		room.ID, len(resp.BookedSlots), resp.Date)
	return resp, nil
}
