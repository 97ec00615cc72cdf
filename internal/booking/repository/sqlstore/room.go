package sqlstore

import (
	"context"
	"database/sql"

	"hotel-assistant/internal/booking"
	repo "hotel-assistant/internal/booking/repository"
)

const roomColumns = `room_id, room_type, price, guest_capacity, description`

// ListRooms returns every room ordered by id.
func (r *implRepository) ListRooms(ctx context.Context) ([]booking.Room, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY room_id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRooms"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var rooms []booking.Room
	for rows.Next() {
		var room booking.Room
		if err := rows.Scan(&room.ID, &room.Type, &room.Price, &room.Capacity, &room.Description); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRooms"), err)
			return nil, repo.ErrFailedToList
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRooms"), err)
		return nil, repo.ErrFailedToList
	}
	return rooms, nil
}

// GetRoom returns the room with id, or a zero Room when it does not exist.
func (r *implRepository) GetRoom(ctx context.Context, id int) (booking.Room, error) {
	query := r.dialect.Rebind(`SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1`)

	var room booking.Room
	err := r.db.QueryRowContext(ctx, query, id).Scan(&room.ID, &room.Type, &room.Price, &room.Capacity, &room.Description)
	if err == sql.ErrNoRows {
		return booking.Room{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRoom"), err)
		return booking.Room{}, repo.ErrFailedToGet
	}
	return room, nil
}

// UpsertRoom inserts the room or replaces its attributes.
func (r *implRepository) UpsertRoom(ctx context.Context, room booking.Room) error {
	query := r.dialect.Rebind(`
		INSERT INTO rooms (room_id, room_type, price, guest_capacity, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (room_id) DO UPDATE SET
			room_type = excluded.room_type,
			price = excluded.price,
			guest_capacity = excluded.guest_capacity,
			description = excluded.description`)

	if _, err := r.db.ExecContext(ctx, query, room.ID, room.Type, room.Price, room.Capacity, room.Description); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertRoom"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
