package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/flightops/flightline/libs/db"
	"github.com/flightops/flightline/services/scheduler-service/internal/model"
)

type BookingRepository struct {
	pool *db.Pool
}

func NewBookingRepository(pool *db.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *model.Booking) (string, error) {
	id := uuid.NewString()
	var instructorID *string
	if b.InstructorID != "" {
		instructorID = &b.InstructorID
	}
	var studentID *string
	if b.StudentID != "" {
		studentID = &b.StudentID
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings
			(id, aircraft_id, instructor_id, student_id, start_time, end_time, status, title)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, b.AircraftID, instructorID, studentID, b.StartTime, b.EndTime, b.Status, b.Title)
	if err != nil {
		return "", err
	}
	return id, nil
}

const bookingColumns = `
	id::text, aircraft_id::text, COALESCE(instructor_id::text, ''), COALESCE(student_id::text, ''),
	start_time, end_time, status, title, cancelled_at, COALESCE(cancellation_reason, ''), created_at`

func scanBooking(row pgx.Row) (model.Booking, error) {
	var b model.Booking
	var cancelledAt *time.Time
	err := row.Scan(
		&b.ID,
		&b.AircraftID,
		&b.InstructorID,
		&b.StudentID,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.Title,
		&cancelledAt,
		&b.CancelReason,
		&b.CreatedAt,
	)
	if err != nil {
		return model.Booking{}, err
	}
	b.CancelledAt = cancelledAt
	return b, nil
}

// ListForRange returns non-cancelled bookings intersecting [start, end).
// Callers pass the UTC range produced by the day boundary translator.
func (r *BookingRepository) ListForRange(ctx context.Context, start, end time.Time) ([]model.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE start_time < $2
			AND end_time > $1
			AND status <> 'cancelled'
		ORDER BY start_time ASC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return bookings, nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, bookingID string) (model.Booking, error) {
	return scanBooking(tx.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`, bookingID))
}

func (r *BookingRepository) Cancel(ctx context.Context, tx pgx.Tx, bookingID, reason string) (time.Time, error) {
	var cancelledAt time.Time
	err := tx.QueryRow(ctx, `
		UPDATE bookings
		SET status = 'cancelled',
			cancelled_at = now(),
			cancellation_reason = $2
		WHERE id = $1
		RETURNING cancelled_at
	`, bookingID, reason).Scan(&cancelledAt)
	return cancelledAt, err
}

// CompleteDue flips past bookings from booked to completed and returns the
// affected rows. Used by the background sweeper.
func (r *BookingRepository) CompleteDue(ctx context.Context, tx pgx.Tx, now time.Time, limit int) ([]model.Booking, error) {
	rows, err := tx.Query(ctx, `
		UPDATE bookings
		SET status = 'completed'
		WHERE id IN (
			SELECT id FROM bookings
			WHERE status = 'booked' AND end_time <= $1
			ORDER BY end_time
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING `+bookingColumns+`
	`, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return bookings, nil
}

// IsConflict reports an exclusion-constraint violation, raised when a
// booking overlaps an existing one on the same aircraft.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
