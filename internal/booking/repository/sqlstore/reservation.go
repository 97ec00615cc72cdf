package sqlstore

import (
	"context"
	"database/sql"

	"hotel-assistant/internal/booking"
	repo "hotel-assistant/internal/booking/repository"
	"hotel-assistant/pkg/sqldb"
)

const reservationColumns = `booking_id, booking_number, first_name, last_name, email, phone,
	room_id, check_in, check_out, num_guests, total_price, special_requests`

// FindConflicts returns reservations of the room overlapping [CheckIn, CheckOut).
func (r *implRepository) FindConflicts(ctx context.Context, opt repo.FindConflictsOptions) ([]booking.Reservation, error) {
	conflicts, err := r.findConflicts(ctx, r.db, opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindConflicts"), err)
		return nil, repo.ErrFailedToList
	}
	return conflicts, nil
}

// CreateReservation runs the conflict check, the insert and the booking number
// assignment in one transaction. Conflicting requests insert nothing.
func (r *implRepository) CreateReservation(ctx context.Context, opt repo.CreateReservationOptions) (repo.CreateReservationResult, error) {
	req := opt.Request

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateReservation"), err)
		return repo.CreateReservationResult{}, repo.ErrFailedToBegin
	}
	defer tx.Rollback()

	// Concurrent requests for the same room queue on the room row.
	if r.dialect == sqldb.Postgres {
		var roomID int
		if err := tx.QueryRowContext(ctx, `SELECT room_id FROM rooms WHERE room_id = $1 FOR UPDATE`, req.RoomID).Scan(&roomID); err != nil {
			r.l.Errorf(ctx, "%s lock room: %v", r.dsn("CreateReservation"), err)
			return repo.CreateReservationResult{}, repo.ErrFailedToGet
		}
	}

	conflicts, err := r.findConflicts(ctx, tx, repo.FindConflictsOptions{
		RoomID:   req.RoomID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s conflicts: %v", r.dsn("CreateReservation"), err)
		return repo.CreateReservationResult{}, repo.ErrFailedToList
	}
	if len(conflicts) > 0 {
		return repo.CreateReservationResult{Conflicts: conflicts}, nil
	}

	insert := r.dialect.Rebind(`
		INSERT INTO bookings (first_name, last_name, email, phone, room_id, check_in, check_out,
			num_guests, total_price, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING booking_id`)

	var id int64
	err = tx.QueryRowContext(ctx, insert,
		req.FirstName, req.LastName, req.Email, req.Phone, req.RoomID,
		sqldb.FormatDate(req.CheckIn), sqldb.FormatDate(req.CheckOut),
		req.Guests, req.TotalPrice, req.SpecialRequests,
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateReservation"), err)
		return repo.CreateReservationResult{}, repo.ErrFailedToInsert
	}

	number := booking.FormatBookingNumber(opt.BookedAt, id)
	update := r.dialect.Rebind(`UPDATE bookings SET booking_number = $1 WHERE booking_id = $2`)
	if _, err := tx.ExecContext(ctx, update, number, id); err != nil {
		r.l.Errorf(ctx, "%s number: %v", r.dsn("CreateReservation"), err)
		return repo.CreateReservationResult{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateReservation"), err)
		return repo.CreateReservationResult{}, repo.ErrFailedToCommit
	}

	return repo.CreateReservationResult{
		Reservation: booking.Reservation{ID: id, BookingNumber: number, Request: req},
	}, nil
}

// GetReservationByNumber returns a zero Reservation when the number is unknown.
func (r *implRepository) GetReservationByNumber(ctx context.Context, number string) (booking.Reservation, error) {
	query := r.dialect.Rebind(`SELECT ` + reservationColumns + ` FROM bookings WHERE booking_number = $1`)

	rows, err := r.db.QueryContext(ctx, query, number)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetReservationByNumber"), err)
		return booking.Reservation{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("GetReservationByNumber"), err)
		return booking.Reservation{}, repo.ErrFailedToGet
	}
	if len(reservations) == 0 {
		return booking.Reservation{}, nil
	}
	return reservations[0], nil
}

func (r *implRepository) findConflicts(ctx context.Context, q queryer, opt repo.FindConflictsOptions) ([]booking.Reservation, error) {
	query := r.dialect.Rebind(`SELECT ` + reservationColumns + ` FROM bookings
		WHERE room_id = $1 AND check_in < $2 AND $3 < check_out
		ORDER BY check_in, booking_id`)

	rows, err := q.QueryContext(ctx, query, opt.RoomID, sqldb.FormatDate(opt.CheckOut), sqldb.FormatDate(opt.CheckIn))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]booking.Reservation, error) {
	var out []booking.Reservation
	for rows.Next() {
		var (
			res      booking.Reservation
			number   sql.NullString
			checkIn  sqldb.Date
			checkOut sqldb.Date
		)
		if err := rows.Scan(
			&res.ID, &number, &res.FirstName, &res.LastName, &res.Email, &res.Phone,
			&res.RoomID, &checkIn, &checkOut, &res.Guests, &res.TotalPrice, &res.SpecialRequests,
		); err != nil {
			return nil, err
		}
		res.BookingNumber = number.String
		res.CheckIn = checkIn.Time
		res.CheckOut = checkOut.Time
		out = append(out, res)
	}
	return out, rows.Err()
}
