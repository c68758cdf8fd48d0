package submit_application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	roomRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/room"
	"github.com/univent-hse/Univent-VenueService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppRepo struct {
	created *domain.Application
}

func (r *fakeAppRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	app.ID = 1
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	r.created = app
	return app, nil
}

type fakeRoomCatalog struct {
	known map[string]*domain.Room // "tower/number"
}

func (c *fakeRoomCatalog) GetByTowerAndNumber(_ context.Context, tower domain.Tower, number string) (*domain.Room, error) {
	room, ok := c.known[string(tower)+"/"+number]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

var student = domain.Principal{ID: 42, Role: domain.RoleStudent}

func validRequest() *Request {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return &Request{
		Principal:            student,
		Title:                "Лекция по Go",
		Description:          "Открытая лекция",
		ExpectedParticipants: 30,
		StartTime:            day.Add(15 * time.Hour),
		EndTime:              day.Add(17 * time.Hour),
		EventType:            "OFFLINE",
		Location: &LocationInput{
			Type:       "dukat",
			Tower:      ptr.Ptr("F"),
			RoomNumber: ptr.Ptr("305"),
		},
	}
}

func newTestUseCase(repo *fakeAppRepo) *UseCase {
	rooms := &fakeRoomCatalog{known: map[string]*domain.Room{
		"F/305": {ID: 1, Tower: domain.TowerF, Number: "305", Capacity: 60},
	}}
	return NewUseCase(repo, rooms, nopLogger{})
}

func TestSubmit_Success(t *testing.T) {
	repo := &fakeAppRepo{}
	uc := newTestUseCase(repo)

	created, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, student.ID, created.OrganizerID)
	assert.Nil(t, created.AssignedRoomID)
	require.NotNil(t, created.Location)
	assert.True(t, created.Location.IsDukat())
	assert.Equal(t, domain.TowerF, *created.Location.Tower)
}

func TestSubmit_OnlineEventWithoutLocation(t *testing.T) {
	repo := &fakeAppRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.EventType = "ONLINE"
	req.Location = nil

	created, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.EventTypeOnline, created.EventType)
	assert.Nil(t, created.Location)
}

func TestSubmit_CustomLocation(t *testing.T) {
	repo := &fakeAppRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Location = &LocationInput{
		Type:    "custom",
		Address: ptr.Ptr("Покровский бульвар, 11"),
	}

	created, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, created.Location)
	assert.True(t, created.Location.IsCustom())
	assert.Equal(t, "Покровский бульвар, 11", *created.Location.Address)
}

func TestSubmit_OnlyStudentsMaySubmit(t *testing.T) {
	uc := newTestUseCase(&fakeAppRepo{})

	for _, role := range []domain.Role{domain.RoleCurator, domain.RoleAdmin, domain.Role("unknown")} {
		req := validRequest()
		req.Principal = domain.Principal{ID: 7, Role: role}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied, "role %s", role)
	}
}

func TestSubmit_InvalidTimeRange(t *testing.T) {
	uc := newTestUseCase(&fakeAppRepo{})

	req := validRequest()
	req.StartTime, req.EndTime = req.EndTime, req.StartTime
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Zero-duration events are rejected as well
	req = validRequest()
	req.EndTime = req.StartTime
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestSubmit_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty title", func(r *Request) { r.Title = "  " }},
		{"zero participants", func(r *Request) { r.ExpectedParticipants = 0 }},
		{"unknown event type", func(r *Request) { r.EventType = "HYBRID" }},
		{"missing start time", func(r *Request) { r.StartTime = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSubmit_LocationShape(t *testing.T) {
	uc := newTestUseCase(&fakeAppRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"online event with location", func(r *Request) { r.EventType = "ONLINE" }},
		{"offline event without location", func(r *Request) { r.Location = nil }},
		{"unknown location type", func(r *Request) { r.Location.Type = "zoom" }},
		{"dukat without tower", func(r *Request) { r.Location.Tower = nil }},
		{"dukat with unknown tower", func(r *Request) { r.Location.Tower = ptr.Ptr("C") }},
		{"dukat without room number", func(r *Request) { r.Location.RoomNumber = nil }},
		{"custom with empty address", func(r *Request) {
			r.Location = &LocationInput{Type: "custom", Address: ptr.Ptr("   ")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidLocation)
		})
	}
}

func TestSubmit_UnknownDukatRoom(t *testing.T) {
	uc := newTestUseCase(&fakeAppRepo{})

	req := validRequest()
	req.Location.RoomNumber = ptr.Ptr("999")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidLocation)
}
