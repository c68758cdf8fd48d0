package moderate_application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	appRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/application"
	roomRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/room"
	"github.com/univent-hse/Univent-VenueService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeAppRepo in-memory application store guarded by a mutex so the
// concurrency test can hammer it from several goroutines
type fakeAppRepo struct {
	mu   sync.Mutex
	apps map[int64]*domain.Application
}

func newFakeAppRepo(apps ...*domain.Application) *fakeAppRepo {
	store := make(map[int64]*domain.Application, len(apps))
	for _, a := range apps {
		copied := *a
		store[a.ID] = &copied
	}
	return &fakeAppRepo{apps: store}
}

func (r *fakeAppRepo) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return nil, appRepo.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (r *fakeAppRepo) FindApprovedConflict(_ context.Context, roomID int64, start, end time.Time, excludeID int64) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, app := range r.apps {
		if app.ID == excludeID || app.Status != domain.StatusApproved {
			continue
		}
		if app.AssignedRoomID == nil || *app.AssignedRoomID != roomID {
			continue
		}
		if app.StartTime.Before(end) && app.EndTime.After(start) {
			copied := *app
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAppRepo) UpdateModeration(_ context.Context, id int64, status domain.ApplicationStatus, roomID *int64, comment *string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return nil, appRepo.ErrApplicationNotFound
	}
	app.Status = status
	app.AssignedRoomID = roomID
	app.CuratorComment = comment
	copied := *app
	return &copied, nil
}

func (r *fakeAppRepo) get(id int64) domain.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.apps[id]
}

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

// fakeTxManager serializes the callbacks with a mutex, mirroring what a
// SERIALIZABLE transaction gives the real implementation
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// fakeNotifier reports every notified application over a channel so tests
// can wait for the fire-and-forget goroutine
type fakeNotifier struct {
	calls chan *domain.Application
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan *domain.Application, 16)}
}

func (n *fakeNotifier) NotifyStatusChange(_ context.Context, app *domain.Application) error {
	n.calls <- app
	return nil
}

func (n *fakeNotifier) waitForCall(t *testing.T) *domain.Application {
	t.Helper()
	select {
	case app := <-n.calls:
		return app
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification, got none")
		return nil
	}
}

func (n *fakeNotifier) assertNoCall(t *testing.T) {
	t.Helper()
	select {
	case app := <-n.calls:
		t.Fatalf("unexpected notification for application id=%d", app.ID)
	case <-time.After(100 * time.Millisecond):
	}
}

var (
	curator = domain.Principal{ID: 1, Role: domain.RoleCurator}
	student = domain.Principal{ID: 2, Role: domain.RoleStudent}
)

func pendingApplication(id int64, startHour, endHour int) *domain.Application {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return &domain.Application{
		ID:                   id,
		OrganizerID:          42,
		Title:                "Хакатон",
		ExpectedParticipants: 50,
		StartTime:            day.Add(time.Duration(startHour) * time.Hour),
		EndTime:              day.Add(time.Duration(endHour) * time.Hour),
		EventType:            domain.EventTypeOffline,
		Status:               domain.StatusPending,
	}
}

func testRooms() *fakeRoomCatalog {
	return &fakeRoomCatalog{rooms: map[int64]*domain.Room{
		1: {ID: 1, Tower: domain.TowerF, Number: "305", Capacity: 60},
		2: {ID: 2, Tower: domain.TowerB, Number: "101", Capacity: 20},
	}}
}

func newTestUseCase(repo *fakeAppRepo, notifier *fakeNotifier) *UseCase {
	return NewUseCase(repo, testRooms(), &fakeTxManager{}, notifier, nopLogger{})
}

func TestModerate_AccessDeniedForStudent(t *testing.T) {
	repo := newFakeAppRepo(pendingApplication(10, 10, 12))
	notifier := newFakeNotifier()
	uc := newTestUseCase(repo, notifier)

	_, err := uc.Execute(context.Background(), &Request{
		Principal:      student,
		ApplicationID:  10,
		Status:         "approved",
		AssignedRoomID: ptr.Ptr(int64(1)),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	notifier.assertNoCall(t)
}

func TestModerate_InvalidStatus(t *testing.T) {
	uc := newTestUseCase(newFakeAppRepo(), newFakeNotifier())

	_, err := uc.Execute(context.Background(), &Request{
		Principal:     curator,
		ApplicationID: 10,
		Status:        "maybe",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestModerate_ApproveWithoutRoom(t *testing.T) {
	uc := newTestUseCase(newFakeAppRepo(pendingApplication(10, 10, 12)), newFakeNotifier())

	_, err := uc.Execute(context.Background(), &Request{
		Principal:     curator,
		ApplicationID: 10,
		Status:        "approved",
	})

	assert.ErrorIs(t, err, ErrRoomRequired)
}

func TestModerate_RejectWithRoom(t *testing.T) {
	uc := newTestUseCase(newFakeAppRepo(pendingApplication(10, 10, 12)), newFakeNotifier())

	_, err := uc.Execute(context.Background(), &Request{
		Principal:      curator,
		ApplicationID:  10,
		Status:         "rejected",
		AssignedRoomID: ptr.Ptr(int64(1)),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestModerate_ApplicationNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeAppRepo(), newFakeNotifier())

	_, err := uc.Execute(context.Background(), &Request{
		Principal:      curator,
		ApplicationID:  999,
		Status:         "approved",
		AssignedRoomID: ptr.Ptr(int64(1)),
	})

	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestModerate_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeAppRepo(pendingApplication(10, 10, 12)), newFakeNotifier())

	_, err := uc.Execute(context.Background(), &Request{
		Principal:      curator,
		ApplicationID:  10,
		Status:         "approved",
		AssignedRoomID: ptr.Ptr(int64(777)),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestModerate_ApproveSuccess(t *testing.T) {
	repo := newFakeAppRepo(pendingApplication(10, 10, 12))
	notifier := newFakeNotifier()
	uc := newTestUseCase(repo, notifier)

	updated, err := uc.Execute(context.Background(), &Request{
		Principal:      curator,
		ApplicationID:  10,
		Status:         "approved",
		AssignedRoomID: ptr.Ptr(int64(1)),
		CuratorComment: ptr.Ptr("Ждем отчет после мероприятия"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
	require.NotNil(t, updated.AssignedRoomID)
	assert.Equal(t, int64(1), *updated.AssignedRoomID)
	require.NotNil(t, updated.CuratorComment)
	assert.Equal(t, "Ждем отчет после мероприятия", *updated.CuratorComment)

	notified := notifier.waitForCall(t)
	assert.Equal(t, int64(10), notified.ID)
	assert.Equal(t, domain.StatusApproved, notified.Status)
	notifier.assertNoCall(t) // exactly one attempt
}

func TestModerate_RejectSuccess(t *testing.T) {
	repo := newFakeAppRepo(pendingApplication(10, 10, 12))
	notifier := newFakeNotifier()
	uc := newTestUseCase(repo, notifier)

	updated, err := uc.Execute(context.Background(), &Request{
		Principal:      curator,
		ApplicationID:  10,
		Status:         "rejected",
		CuratorComment: ptr.Ptr("Нет свободных аудиторий в этот день"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, updated.Status)
	assert.Nil(t, updated.AssignedRoomID)

	notified := notifier.waitForCall(t)
	assert.Equal(t, domain.StatusRejected, notified.Status)
}

func TestModerate_RoomConflict(t *testing.T) {
	approved := pendingApplication(20, 11, 13)
	approved.Status = domain.StatusApproved
	approved.AssignedRoomID = ptr.Ptr(int64(1))

	repo := newFakeAppRepo(pendingApplication(10, 10, 12), approved)
	notifier := newFakeNotifier()
	uc := newTestUseCase(repo, notifier)

	_, err := uc.Execute(context.Background(), &Request{
		Principal:      curator,
		ApplicationID:  10,
		Status:         "approved",
		AssignedRoomID: ptr.Ptr(int64(1)),
	})

	assert.ErrorIs(t, err, ErrRoomConflict)

	// The rejected decision must leave the application untouched
	app := repo.get(10)
	assert.Equal(t, domain.StatusPending, app.Status)
	assert.Nil(t, app.AssignedRoomID)
	notifier.assertNoCall(t)
}

func TestModerate_TouchingIntervalsDoNotConflict(t *testing.T) {
	approved := pendingApplication(20, 12, 14)
	approved.Status = domain.StatusApproved
	approved.AssignedRoomID = ptr.Ptr(int64(1))

	repo := newFakeAppRepo(pendingApplication(10, 10, 12), approved)
	notifier := newFakeNotifier()
	uc := newTestUseCase(repo, notifier)

	updated, err := uc.Execute(context.Background(), &Request{
		Principal:      curator,
		ApplicationID:  10,
		Status:         "approved",
		AssignedRoomID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
	notifier.waitForCall(t)
}

func TestModerate_ReapproveExcludesSelf(t *testing.T) {
	approved := pendingApplication(10, 10, 12)
	approved.Status = domain.StatusApproved
	approved.AssignedRoomID = ptr.Ptr(int64(1))

	repo := newFakeAppRepo(approved)
	notifier := newFakeNotifier()
	uc := newTestUseCase(repo, notifier)

	// Moving an already approved event to another room must not conflict
	// with its own previous booking
	updated, err := uc.Execute(context.Background(), &Request{
		Principal:      curator,
		ApplicationID:  10,
		Status:         "approved",
		AssignedRoomID: ptr.Ptr(int64(2)),
	})

	require.NoError(t, err)
	require.NotNil(t, updated.AssignedRoomID)
	assert.Equal(t, int64(2), *updated.AssignedRoomID)
	notifier.waitForCall(t)
}

func TestModerate_ConcurrentApprovalsForSameRoom(t *testing.T) {
	repo := newFakeAppRepo(pendingApplication(10, 10, 12), pendingApplication(11, 11, 13))
	notifier := newFakeNotifier()
	uc := newTestUseCase(repo, notifier)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, id := range []int64{10, 11} {
		wg.Add(1)
		go func(applicationID int64) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{
				Principal:      curator,
				ApplicationID:  applicationID,
				Status:         "approved",
				AssignedRoomID: ptr.Ptr(int64(1)),
			})
			results <- err
		}(id)
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, ErrRoomConflict)
			conflicts++
		}
	}

	// Overlapping approvals into one room: exactly one may win
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}
