package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"movie-booking-service/internal/module/show/models/entity"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/log"
)

type repositories struct {
	db              *sqlx.DB
	log             log.Logger
	schedulerClient *asynq.Client
}

type Repositories interface {
	// db
	FindShowByID(ctx context.Context, showID int64) (entity.Show, error)
	CreateShow(ctx context.Context, show entity.Show, seatNumbers []string, seatPrice float64) (int64, error)
	UpdateShowStatus(ctx context.Context, showID int64, from string, to string) (bool, error)
	HoldSeat(ctx context.Context, showID int64, seatNumber string, userID int64, staleBefore time.Time) (bool, error)
	ConfirmBookedSeats(ctx context.Context, showID int64, seatNumbers []string) error
	ReleaseExpiredSeats(ctx context.Context, showID int64, staleBefore time.Time) ([]string, error)
	ReleaseSeatsByUser(ctx context.Context, showID int64, userID int64, seatNumbers []string) error
	ListSeats(ctx context.Context, showID int64) ([]entity.ShowSeat, error)
	SumConfirmedRevenue(ctx context.Context, showID int64) (float64, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processIn time.Duration, taskType string, payload []byte) (string, error)
}

func New(db *sqlx.DB, log log.Logger, schedulerClient *asynq.Client) Repositories {
	return &repositories{
		db:              db,
		log:             log,
		schedulerClient: schedulerClient,
	}
}

// FindShowByID implements Repositories.
func (r *repositories) FindShowByID(ctx context.Context, showID int64) (entity.Show, error) {
	query := `
		SELECT id, movie_id, theater_id, screen_id, vendor_id, start_time, end_time, status, created_at, updated_at
		FROM shows
		WHERE id = $1
	`
	var show entity.Show
	err := r.db.GetContext(ctx, &show, query, showID)
	if err == sql.ErrNoRows {
		return entity.Show{}, errors.NotFound("show not found")
	}
	if err != nil {
		return entity.Show{}, errors.InternalServerError("error find show by id")
	}
	return show, nil
}

// CreateShow implements Repositories. The show row and its seat grid are
// written in one transaction.
func (r *repositories) CreateShow(ctx context.Context, show entity.Show, seatNumbers []string, seatPrice float64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.InternalServerError("error starting transaction")
	}

	var showID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO shows (movie_id, theater_id, screen_id, vendor_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, show.MovieID, show.TheaterID, show.ScreenID, show.VendorID, show.StartTime, show.EndTime, entity.ShowStatusScheduled).Scan(&showID)
	if err != nil {
		tx.Rollback()
		return 0, errors.InternalServerError("error insert show")
	}

	values := make([]string, 0, len(seatNumbers))
	args := make([]interface{}, 0, len(seatNumbers)*4)
	for i, seatNumber := range seatNumbers {
		base := i * 4
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, showID, seatNumber, entity.SeatStatusAvailable, seatPrice)
	}
	query := `INSERT INTO show_seats (show_id, seat_number, status, price) VALUES ` + strings.Join(values, ",")
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		tx.Rollback()
		return 0, errors.InternalServerError("error insert show seats")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.InternalServerError("error committing transaction")
	}

	return showID, nil
}

// UpdateShowStatus implements Repositories. The update is conditional on
// the current status so the lifecycle only advances forward; false means
// the show was not in the expected state and the caller should no-op.
func (r *repositories) UpdateShowStatus(ctx context.Context, showID int64, from string, to string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shows SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3
	`, to, showID, from)
	if err != nil {
		return false, errors.InternalServerError("error update show status")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error update show status")
	}
	return affected > 0, nil
}

// HoldSeat implements Repositories. One conditional update per seat: the
// hold wins when the seat is available, already pending under the same
// user, or pending under a hold older than the TTL cutoff. Two concurrent
// calls for the same seat cannot both see rows affected.
func (r *repositories) HoldSeat(ctx context.Context, showID int64, seatNumber string, userID int64, staleBefore time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE show_seats
		SET status = $1, held_by = $2, held_at = NOW()
		WHERE show_id = $3 AND seat_number = $4
		  AND (
			status = $5
			OR (status = $1 AND (held_by = $2 OR held_at < $6))
		  )
	`, entity.SeatStatusPending, userID, showID, seatNumber, entity.SeatStatusAvailable, staleBefore)
	if err != nil {
		return false, errors.InternalServerError("error hold seat")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error hold seat")
	}
	return affected > 0, nil
}

// ConfirmBookedSeats implements Repositories. Set-based and idempotent:
// re-confirming already-booked seats affects the same rows to the same
// final state. held_by is kept so cancellation can pull the owner's seats.
func (r *repositories) ConfirmBookedSeats(ctx context.Context, showID int64, seatNumbers []string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE show_seats
		SET status = $1
		WHERE show_id = $2 AND seat_number = ANY($3)
	`, entity.SeatStatusBooked, showID, pq.Array(seatNumbers))
	if err != nil {
		return errors.InternalServerError("error confirm booked seats")
	}
	return nil
}

// ReleaseExpiredSeats implements Repositories. Purges only holds still
// pending past the TTL cutoff and reports which seats were freed.
func (r *repositories) ReleaseExpiredSeats(ctx context.Context, showID int64, staleBefore time.Time) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		UPDATE show_seats
		SET status = $1, held_by = NULL, held_at = NULL
		WHERE show_id = $2 AND status = $3 AND held_at < $4
		RETURNING seat_number
	`, entity.SeatStatusAvailable, showID, entity.SeatStatusPending, staleBefore)
	if err != nil {
		return nil, errors.InternalServerError("error release expired seats")
	}
	defer rows.Close()

	var released []string
	for rows.Next() {
		var seatNumber string
		if err := rows.Scan(&seatNumber); err != nil {
			return nil, errors.InternalServerError("error release expired seats")
		}
		released = append(released, seatNumber)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.InternalServerError("error release expired seats")
	}
	return released, nil
}

// ReleaseSeatsByUser implements Repositories. Cancellation path: pulls the
// named seats back to available only when they belong to this user.
func (r *repositories) ReleaseSeatsByUser(ctx context.Context, showID int64, userID int64, seatNumbers []string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE show_seats
		SET status = $1, held_by = NULL, held_at = NULL
		WHERE show_id = $2 AND held_by = $3 AND seat_number = ANY($4)
	`, entity.SeatStatusAvailable, showID, userID, pq.Array(seatNumbers))
	if err != nil {
		return errors.InternalServerError("error release seats by user")
	}
	return nil
}

// ListSeats implements Repositories.
func (r *repositories) ListSeats(ctx context.Context, showID int64) ([]entity.ShowSeat, error) {
	query := `
		SELECT id, show_id, seat_number, status, price, held_by, held_at
		FROM show_seats
		WHERE show_id = $1
		ORDER BY seat_number
	`
	var seats []entity.ShowSeat
	err := r.db.SelectContext(ctx, &seats, query, showID)
	if err != nil {
		return nil, errors.InternalServerError("error list show seats")
	}
	return seats, nil
}

// SumConfirmedRevenue implements Repositories.
func (r *repositories) SumConfirmedRevenue(ctx context.Context, showID int64) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM bookings
		WHERE show_id = $1 AND status = 'confirmed' AND payment_status = 'completed'
	`
	var total float64
	err := r.db.GetContext(ctx, &total, query, showID)
	if err != nil {
		return 0, errors.InternalServerError("error sum confirmed revenue")
	}
	return total, nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, processIn time.Duration, taskType string, payload []byte) (string, error) {
	task := asynq.NewTask(taskType, payload)
	info, err := r.schedulerClient.EnqueueContext(ctx, task, asynq.ProcessIn(processIn))
	if err != nil {
		return "", errors.InternalServerError("error enqueue scheduler task")
	}
	return info.ID, nil
}
