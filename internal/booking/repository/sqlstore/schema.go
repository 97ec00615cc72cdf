package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"hotel-assistant/pkg/sqldb"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS rooms (
	room_id        SERIAL PRIMARY KEY,
	room_type      TEXT NOT NULL,
	price          NUMERIC(10,2) NOT NULL,
	guest_capacity INTEGER NOT NULL,
	description    TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS room_availability (
	room_id      INTEGER NOT NULL REFERENCES rooms(room_id),
	date         DATE NOT NULL,
	is_available BOOLEAN NOT NULL DEFAULT TRUE,
	PRIMARY KEY (room_id, date)
);
CREATE TABLE IF NOT EXISTS bookings (
	booking_id       SERIAL PRIMARY KEY,
	first_name       TEXT NOT NULL,
	last_name        TEXT NOT NULL,
	email            TEXT NOT NULL,
	phone            TEXT NOT NULL DEFAULT '',
	room_id          INTEGER NOT NULL REFERENCES rooms(room_id),
	check_in         DATE NOT NULL,
	check_out        DATE NOT NULL,
	num_guests       INTEGER NOT NULL,
	total_price      NUMERIC(10,2) NOT NULL,
	special_requests TEXT NOT NULL DEFAULT '',
	booking_number   TEXT UNIQUE,
	CHECK (check_out > check_in)
);
CREATE INDEX IF NOT EXISTS bookings_room_dates_idx ON bookings (room_id, check_in, check_out)`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS rooms (
	room_id        INTEGER PRIMARY KEY,
	room_type      TEXT NOT NULL,
	price          REAL NOT NULL,
	guest_capacity INTEGER NOT NULL,
	description    TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS room_availability (
	room_id      INTEGER NOT NULL REFERENCES rooms(room_id),
	date         TEXT NOT NULL,
	is_available INTEGER NOT NULL DEFAULT 1,
	PRIMARY KEY (room_id, date)
);
CREATE TABLE IF NOT EXISTS bookings (
	booking_id       INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name       TEXT NOT NULL,
	last_name        TEXT NOT NULL,
	email            TEXT NOT NULL,
	phone            TEXT NOT NULL DEFAULT '',
	room_id          INTEGER NOT NULL REFERENCES rooms(room_id),
	check_in         TEXT NOT NULL,
	check_out        TEXT NOT NULL,
	num_guests       INTEGER NOT NULL,
	total_price      REAL NOT NULL,
	special_requests TEXT NOT NULL DEFAULT '',
	booking_number   TEXT UNIQUE,
	CHECK (check_out > check_in)
);
CREATE INDEX IF NOT EXISTS bookings_room_dates_idx ON bookings (room_id, check_in, check_out)`

// EnsureSchema creates the rooms, room_availability and bookings tables when absent.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect sqldb.Dialect) error {
	schema := postgresSchema
	if dialect == sqldb.SQLite {
		schema = sqliteSchema
	}
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: ensure schema: %w", err)
		}
	}
	return nil
}
