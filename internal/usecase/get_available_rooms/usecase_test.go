package get_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomCatalog struct {
	byTower map[domain.Tower][]*domain.Room
}

func (c *fakeRoomCatalog) GetByTower(_ context.Context, tower domain.Tower) ([]*domain.Room, error) {
	return c.byTower[tower], nil
}

type fakeAppRepo struct {
	busy []int64
}

func (r *fakeAppRepo) RoomIDsWithApprovedOverlap(_ context.Context, roomIDs []int64, _, _ time.Time) ([]int64, error) {
	requested := make(map[int64]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		requested[id] = struct{}{}
	}

	out := make([]int64, 0)
	for _, id := range r.busy {
		if _, ok := requested[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func validRequest() *Request {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return &Request{
		Tower:     "F",
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(12 * time.Hour),
	}
}

func TestGetAvailableRooms_FiltersBusyRooms(t *testing.T) {
	rooms := &fakeRoomCatalog{byTower: map[domain.Tower][]*domain.Room{
		domain.TowerF: {
			{ID: 1, Tower: domain.TowerF, Number: "201", Capacity: 30},
			{ID: 2, Tower: domain.TowerF, Number: "305", Capacity: 60},
			{ID: 3, Tower: domain.TowerF, Number: "401", Capacity: 100},
		},
	}}
	uc := NewUseCase(rooms, &fakeAppRepo{busy: []int64{2}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "201", resp.Rooms[0].Number)
	assert.Equal(t, "401", resp.Rooms[1].Number)
}

func TestGetAvailableRooms_EmptyTower(t *testing.T) {
	uc := NewUseCase(
		&fakeRoomCatalog{byTower: map[domain.Tower][]*domain.Room{}},
		&fakeAppRepo{},
		nopLogger{},
	)

	req := validRequest()
	req.Tower = "B"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestGetAvailableRooms_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRoomCatalog{}, &fakeAppRepo{}, nopLogger{})

	req := validRequest()
	req.Tower = "C"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.EndTime = req.StartTime
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = time.Time{}
	req.EndTime = time.Time{}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
