package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/repository"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (building_id, type_id, room_number, floor_number, is_available)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, room.BuildingID, room.TypeID, room.RoomNumber, room.FloorNumber, true).Scan(&room.ID)
}

func (r *roomRepository) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	room := &domain.Room{}
	query := `SELECT id, building_id, type_id, room_number, floor_number, is_available FROM rooms WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&room.ID, &room.BuildingID, &room.TypeID, &room.RoomNumber, &room.FloorNumber, &room.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *roomRepository) GetByNumber(ctx context.Context, buildingID int32, roomNumber string) (*domain.Room, error) {
	room := &domain.Room{}
	query := `SELECT id, building_id, type_id, room_number, floor_number, is_available FROM rooms WHERE building_id = $1 AND room_number = $2`
	err := r.db.QueryRowContext(ctx, query, buildingID, roomNumber).Scan(&room.ID, &room.BuildingID, &room.TypeID, &room.RoomNumber, &room.FloorNumber, &room.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms SET building_id=$1, type_id=$2, room_number=$3, floor_number=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, room.BuildingID, room.TypeID, room.RoomNumber, room.FloorNumber, room.ID)
	return err
}

func (r *roomRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	return err
}

func (r *roomRepository) SetAvailability(ctx context.Context, roomID int32, available bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE rooms SET is_available = $1 WHERE id = $2`, available, roomID)
	return err
}

func (r *roomRepository) IsAvailable(ctx context.Context, roomID int32) (bool, error) {
	var available bool
	err := r.db.QueryRowContext(ctx, `SELECT is_available FROM rooms WHERE id = $1`, roomID).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.ErrRoomNotFound
	}
	return available, err
}

func (r *roomRepository) ListAvailable(ctx context.Context, actor domain.Actor) ([]domain.Room, error) {
	query := `SELECT r.id, r.building_id, r.type_id, r.room_number, r.floor_number, r.is_available
	          FROM rooms r
	          JOIN buildings b ON r.building_id = b.id
	          WHERE r.is_available = true AND b.is_active = true`
	args := []interface{}{}
	if actor.Role == domain.RoleLandlord {
		query += ` AND b.owner_id = $1`
		args = append(args, actor.UserID)
	}
	query += ` ORDER BY r.building_id, r.room_number`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.BuildingID, &room.TypeID, &room.RoomNumber, &room.FloorNumber, &room.IsAvailable); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// ReconcileAvailability derives every room's flag from assignment state: a
// room is unavailable exactly when an active or pending assignment references
// it. Only rows whose flag disagrees are touched.
func (r *roomRepository) ReconcileAvailability(ctx context.Context) (int64, error) {
	query := `UPDATE rooms SET is_available = NOT EXISTS (
	              SELECT 1 FROM room_assignments ra
	              WHERE ra.room_id = rooms.id AND ra.status IN ('active', 'pending'))
	          WHERE is_available <> NOT EXISTS (
	              SELECT 1 FROM room_assignments ra
	              WHERE ra.room_id = rooms.id AND ra.status IN ('active', 'pending'))`
	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
