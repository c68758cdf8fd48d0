package get_room_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	roomRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/room"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomCatalog struct {
	rooms map[int64]*domain.Room
}

func (c *fakeRoomCatalog) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := c.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeAppRepo struct {
	apps []*domain.Application
}

func (r *fakeAppRepo) GetApprovedByRoomInWindow(_ context.Context, roomID int64, start, end time.Time) ([]*domain.Application, error) {
	out := make([]*domain.Application, 0)
	for _, app := range r.apps {
		if app.Status != domain.StatusApproved {
			continue
		}
		if app.AssignedRoomID == nil || *app.AssignedRoomID != roomID {
			continue
		}
		if app.StartTime.Before(start) || !app.StartTime.Before(end) {
			continue
		}
		out = append(out, app)
	}
	return out, nil
}

func approvedAt(roomID int64, day time.Time, startHour, endHour int) *domain.Application {
	id := roomID
	return &domain.Application{
		ID:             1,
		Status:         domain.StatusApproved,
		AssignedRoomID: &id,
		StartTime:      day.Add(time.Duration(startHour) * time.Hour),
		EndTime:        day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestRoomAvailability_BookedSlotsForDay(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	rooms := &fakeRoomCatalog{rooms: map[int64]*domain.Room{
		1: {ID: 1, Tower: domain.TowerF, Number: "305", Capacity: 60},
	}}
	repo := &fakeAppRepo{apps: []*domain.Application{
		approvedAt(1, day, 10, 12),
		approvedAt(1, day, 15, 17),
		approvedAt(1, otherDay, 10, 12), // next day, must not show up
		approvedAt(2, day, 10, 12),      // another room
	}}
	uc := NewUseCase(rooms, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: day})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-10", resp.Date)
	require.Len(t, resp.BookedSlots, 2)
	assert.Equal(t, day.Add(10*time.Hour), resp.BookedSlots[0].StartTime)
	assert.Equal(t, day.Add(12*time.Hour), resp.BookedSlots[0].EndTime)
	assert.Equal(t, day.Add(15*time.Hour), resp.BookedSlots[1].StartTime)
}

func TestRoomAvailability_FreeDay(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	rooms := &fakeRoomCatalog{rooms: map[int64]*domain.Room{
		1: {ID: 1, Tower: domain.TowerF, Number: "305", Capacity: 60},
	}}
	uc := NewUseCase(rooms, &fakeAppRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: day})

	require.NoError(t, err)
	assert.Empty(t, resp.BookedSlots)
}

func TestRoomAvailability_RoomNotFound(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeRoomCatalog{rooms: map[int64]*domain.Room{}}, &fakeAppRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 777, Date: day})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomAvailability_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRoomCatalog{}, &fakeAppRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
