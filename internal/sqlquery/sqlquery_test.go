package sqlquery

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"hotel-assistant/internal/booking/repository/sqlstore"
	"hotel-assistant/pkg/log"
	"hotel-assistant/pkg/sqldb"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr error
	}{
		{name: "select with semicolon", query: "SELECT * FROM rooms;", want: "SELECT * FROM rooms"},
		{name: "lowercase with", query: "  with r as (select 1) select * from r ;\n", want: "with r as (select 1) select * from r"},
		{name: "keyword inside literal", query: "SELECT * FROM bookings WHERE special_requests = 'please update the pillows'", want: "SELECT * FROM bookings WHERE special_requests = 'please update the pillows'"},
		{name: "offset is not set", query: "SELECT * FROM rooms LIMIT 5 OFFSET 5", want: "SELECT * FROM rooms LIMIT 5 OFFSET 5"},
		{name: "empty", query: " ; ", wantErr: ErrEmptyQuery},
		{name: "delete", query: "DELETE FROM bookings", wantErr: ErrNotReadOnly},
		{name: "stacked", query: "SELECT 1; DROP TABLE rooms;", wantErr: ErrMultipleStatements},
		{name: "writable cte", query: "WITH d AS (DELETE FROM bookings RETURNING *) SELECT * FROM d", wantErr: ErrNotReadOnly},
		{name: "row lock", query: "SELECT * FROM rooms FOR UPDATE", wantErr: ErrNotReadOnly},
		{name: "pragma", query: "PRAGMA table_info(rooms)", wantErr: ErrNotReadOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Check(tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Check(%q) error = %v, want %v", tt.query, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Check() = %q, want %q", got, tt.want)
			}
		})
	}
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqldb.Open(ctx, sqldb.Config{Dialect: sqldb.SQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlstore.EnsureSchema(ctx, db, sqldb.SQLite); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO rooms (room_id, room_type, price, guest_capacity, description)
		VALUES (1, 'Single', 80, 1, 'Garden view'), (2, 'Double', 120.5, 2, 'Balcony')`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestExecute(t *testing.T) {
	db := newTestDB(t)
	exec := New(db, sqldb.SQLite, 0, log.NewNop())
	ctx := context.Background()

	t.Run("rows", func(t *testing.T) {
		res, err := exec.Execute(ctx, "SELECT room_id, room_type, price FROM rooms ORDER BY room_id;")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Columns) != 3 || res.Columns[1] != "room_type" {
			t.Errorf("columns = %v", res.Columns)
		}
		if len(res.Rows) != 2 || res.Rows[1][1] != "Double" || res.Rows[1][2] != "120.5" {
			t.Errorf("rows = %v", res.Rows)
		}
	})

	t.Run("no rows", func(t *testing.T) {
		res, err := exec.Execute(ctx, "SELECT * FROM bookings")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Empty() {
			t.Errorf("expected empty result, got %v", res.Rows)
		}
	})

	t.Run("rejected before reaching the database", func(t *testing.T) {
		if _, err := exec.Execute(ctx, "UPDATE rooms SET price = 1"); !errors.Is(err, ErrNotReadOnly) {
			t.Fatalf("expected ErrNotReadOnly, got %v", err)
		}
		var price float64
		db.QueryRowContext(ctx, "SELECT price FROM rooms WHERE room_id = 1").Scan(&price)
		if price != 80 {
			t.Errorf("price changed to %v", price)
		}
	})

	t.Run("bad sql", func(t *testing.T) {
		if _, err := exec.Execute(ctx, "SELECT nope FROM nowhere"); !errors.Is(err, ErrQueryFailed) {
			t.Errorf("expected ErrQueryFailed, got %v", err)
		}
	})
}

func TestRender(t *testing.T) {
	if got := render(nil); got != "NULL" {
		t.Errorf("render(nil) = %q", got)
	}
	if got := render([]byte("abc")); got != "abc" {
		t.Errorf("render(bytes) = %q", got)
	}
	if got := render(int64(7)); got != "7" {
		t.Errorf("render(int64) = %q", got)
	}
}
