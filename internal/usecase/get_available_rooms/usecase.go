package get_available_rooms

import (
	"context"
	"fmt"
)

// UseCase use case подбора свободных аудиторий башни на интервал времени.
// Результат носит справочный характер: занятость перепроверяется
// при одобрении заявки.
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

// Execute возвращает аудитории башни, на которые нет одобренного события,
// пересекающегося с [StartTime, EndTime)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	tower, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	rooms, err := uc.rooms.GetByTower(ctx, tower)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get rooms of tower %s: %v", tower, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	roomIDs := make([]int64, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}

	busyIDs, err := uc.appRepo.RoomIDsWithApprovedOverlap(ctx, roomIDs, req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to check occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to check occupancy: %v", ErrInternal, err)
	}

	busy := make(map[int64]struct{}, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = struct{}{}
	}

	resp := &Response{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		if _, taken := busy[room.ID]; taken {
			continue
		}
		resp.Rooms = append(resp.Rooms, RoomResponse{
			ID:       room.ID,
			Tower:    string(room.Tower),
			Number:   room.Number,
			Capacity: room.Capacity,
		})
	}

	uc.logger.Info("GetAvailableRooms: tower=%s, %d of %d rooms available",
		tower, len(resp.Rooms), len(rooms))
	return resp, nil
}
