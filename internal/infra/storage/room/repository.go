package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	"github.com/univent-hse/Univent-VenueService/pkg/psqlbuilder"
	"github.com/univent-hse/Univent-VenueService/pkg/txmanager"
)

var roomColumns = []string{"id", "tower", "number", "capacity"}

// Repository read-only каталог аудиторий здания Дукат.
// Наполняется миграциями, сервис его не изменяет.
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр каталога аудиторий
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByID получает аудиторию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByTowerAndNumber получает аудиторию по башне и номеру
func (r *Repository) GetByTowerAndNumber(ctx context.Context, tower domain.Tower, number string) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"tower": tower, "number": number})
}

// GetByTower получает все аудитории башни
func (r *Repository) GetByTower(ctx context.Context, tower domain.Tower) ([]*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"tower": tower}).
		OrderBy("number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTower - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTower - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Tower, &room.Number, &room.Capacity); err != nil {
			return nil, fmt.Errorf("%w: GetByTower - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTower - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.Tower, &room.Number, &room.Capacity)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}
