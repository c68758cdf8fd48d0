package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	"github.com/univent-hse/Univent-VenueService/pkg/psqlbuilder"
	"github.com/univent-hse/Univent-VenueService/pkg/txmanager"
)

// applicationColumns полный набор колонок таблицы applications
var applicationColumns = []string{
	"id",
	"organizer_id",
	"title",
	"description",
	"expected_participants",
	"needs",
	"start_time",
	"end_time",
	"event_type",
	"location_type",
	"location_tower",
	"location_room",
	"location_address",
	"status",
	"assigned_room_id",
	"curator_comment",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на мероприятия
type Repository struct {
	db Executor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db Executor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку со статусом pending
func (r *Repository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	var locType, locTower, locRoom, locAddress *string
	if app.Location != nil {
		locType = (*string)(&app.Location.Type)
		locTower = (*string)(app.Location.Tower)
		locRoom = app.Location.RoomNumber
		locAddress = app.Location.Address
	}

	query, args, err := psqlbuilder.Insert("applications").
		Columns(
			"organizer_id",
			"title",
			"description",
			"expected_participants",
			"needs",
			"start_time",
			"end_time",
			"event_type",
			"location_type",
			"location_tower",
			"location_room",
			"location_address",
			"status",
		).
		Values(
			app.OrganizerID,
			app.Title,
			app.Description,
			app.ExpectedParticipants,
			app.Needs,
			app.StartTime,
			app.EndTime,
			app.EventType,
			locType,
			locTower,
			locRoom,
			locAddress,
			app.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&app.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time

	return app, nil
}

// GetByID получает заявку по ID.
// Внутри транзакции строка блокируется через FOR UPDATE - это используется
// usecase модерации, чтобы параллельные модерации одной заявки сериализовались.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	app, err := scanApplication(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan application: %v", ErrScanRow, err)
	}

	return app, nil
}

// GetWithFilter получает заявки с фильтрацией по организатору и статусу.
// Выборка ограничена domain.MaxListSize, сортировка - новые первыми.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ApplicationsFilter) ([]*domain.Application, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(applicationColumns...).
		From("applications").
		OrderBy("created_at DESC, id DESC").
		Limit(domain.MaxListSize)

	if filter.OrganizerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"organizer_id": *filter.OrganizerID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// GetApprovedInWindow получает одобренные заявки, пересекающиеся с опциональным
// окном календаря (границы включительно: end_time >= From, start_time <= To)
func (r *Repository) GetApprovedInWindow(ctx context.Context, window domain.CalendarWindow) ([]*domain.Application, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		OrderBy("start_time ASC, id ASC").
		Limit(domain.MaxListSize)

	if window.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_time": *window.From})
	}
	if window.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_time": *window.To})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// FindApprovedConflict ищет одобренную заявку на ту же аудиторию, интервал
// которой пересекается с [start, end). Заявка excludeID исключается из поиска,
// чтобы повторная модерация не конфликтовала сама с собой.
//
// Предикат пересечения полуоткрытых интервалов: start_time < end AND end_time > start.
// Касание границ пересечением не считается.
//
// Внутри транзакции найденная строка блокируется через FOR UPDATE.
// Возвращает nil, nil если конфликтов нет.
func (r *Repository) FindApprovedConflict(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (*domain.Application, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"assigned_room_id": roomID}).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(squirrel.NotEq{"id": excludeID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Limit(1)

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindApprovedConflict - build select query: %v", ErrBuildQuery, err)
	}

	app, err := scanApplication(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindApprovedConflict - scan application: %v", ErrScanRow, err)
	}

	return app, nil
}

// GetApprovedByRoomInWindow возвращает одобренные заявки на аудиторию,
// начинающиеся в окне [start, end). Используется для расписания занятости
// одной аудитории на день.
func (r *Repository) GetApprovedByRoomInWindow(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.Application, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"assigned_room_id": roomID}).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(squirrel.GtOrEq{"start_time": start}).
		Where(squirrel.Lt{"start_time": end}).
		OrderBy("start_time ASC").
		Limit(domain.MaxListSize).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedByRoomInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedByRoomInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// RoomIDsWithApprovedOverlap возвращает ID аудиторий из roomIDs, на которые
// есть одобренная заявка, пересекающаяся с [start, end)
func (r *Repository) RoomIDsWithApprovedOverlap(ctx context.Context, roomIDs []int64, start, end time.Time) ([]int64, error) {
	if len(roomIDs) == 0 {
		return []int64{}, nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT assigned_room_id").
		From("applications").
		Where(squirrel.Eq{"assigned_room_id": roomIDs}).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RoomIDsWithApprovedOverlap - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RoomIDsWithApprovedOverlap - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	busy := make([]int64, 0)
	for rows.Next() {
		var roomID int64
		if err := rows.Scan(&roomID); err != nil {
			return nil, fmt.Errorf("%w: RoomIDsWithApprovedOverlap - scan room id: %v", ErrScanRow, err)
		}
		busy = append(busy, roomID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RoomIDsWithApprovedOverlap - rows error: %v", ErrScanRow, err)
	}

	return busy, nil
}

// UpdateModeration применяет решение модерации одним UPDATE: статус, аудитория
// и комментарий меняются атомарно, частичных записей не бывает
func (r *Repository) UpdateModeration(ctx context.Context, id int64, status domain.ApplicationStatus, roomID *int64, comment *string) (*domain.Application, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("applications").
		Set("status", status).
		Set("assigned_room_id", roomID).
		Set("curator_comment", comment).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(applicationColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateModeration - build update query: %v", ErrBuildQuery, err)
	}

	app, err := scanApplication(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateModeration - scan application: %v", ErrScanRow, err)
	}

	return app, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanApplication сканирует одну строку в domain модель,
// собирая tagged location из nullable колонок
func scanApplication(row rowScanner) (*domain.Application, error) {
	var app domain.Application
	var createdAt, updatedAt sql.NullTime
	var locType, locTower, locRoom, locAddress sql.NullString

	err := row.Scan(
		&app.ID,
		&app.OrganizerID,
		&app.Title,
		&app.Description,
		&app.ExpectedParticipants,
		&app.Needs,
		&app.StartTime,
		&app.EndTime,
		&app.EventType,
		&locType,
		&locTower,
		&locRoom,
		&locAddress,
		&app.Status,
		&app.AssignedRoomID,
		&app.CuratorComment,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time

	if locType.Valid {
		loc := &domain.Location{Type: domain.LocationType(locType.String)}
		if locTower.Valid {
			tower := domain.Tower(locTower.String)
			loc.Tower = &tower
		}
		if locRoom.Valid {
			loc.RoomNumber = &locRoom.String
		}
		if locAddress.Valid {
			loc.Address = &locAddress.String
		}
		app.Location = loc
	}

	return &app, nil
}

// scanApplications сканирует результаты запроса в слайс заявок
func scanApplications(rows *sql.Rows) ([]*domain.Application, error) {
	apps := make([]*domain.Application, 0)

	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanApplications - scan row: %v", ErrScanRow, err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanApplications - rows error: %v", ErrScanRow, err)
	}

	return apps, nil
}

func joinColumns(columns []string) string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
