package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	circuit "github.com/rubyist/circuitbreaker"

	"movie-booking-service/config"
	"movie-booking-service/internal/module/booking/models/entity"
	"movie-booking-service/internal/module/booking/models/request"
	"movie-booking-service/internal/module/booking/models/response"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/log"
	"movie-booking-service/internal/pkg/scheduler"
)

type repositories struct {
	db                 *sqlx.DB
	log                log.Logger
	httpClient         *circuit.HTTPClient
	schedulerClient    *asynq.Client
	schedulerInspector *asynq.Inspector
	cfgUserService     *config.UserServiceConfig
	cfgPaymentGateway  *config.PaymentGatewayConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	CreateCheckoutSession(ctx context.Context, payload request.CheckoutSession) (response.CheckoutSession, error)
	// db
	InsertBooking(ctx context.Context, booking entity.Booking) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error)
	CompleteBookingPayment(ctx context.Context, bookingID string, paymentID string) (bool, error)
	CancelBooking(ctx context.Context, bookingID string, reason string) (bool, error)
	UpdateBookingTaskID(ctx context.Context, bookingID string, taskID string) error
	FindShowInfoByID(ctx context.Context, showID int64) (entity.ShowInfo, error)
	TheaterAllowsFreeCancellation(ctx context.Context, theaterID int64) (bool, error)
	AddLoyaltyPoints(ctx context.Context, userID int64, points int) error
	// scheduler
	SetTaskScheduler(ctx context.Context, processIn time.Duration, taskType string, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(
	db *sqlx.DB,
	log log.Logger,
	httpClient *circuit.HTTPClient,
	schedulerClient *asynq.Client,
	schedulerInspector *asynq.Inspector,
	cfgUserService *config.UserServiceConfig,
	cfgPaymentGateway *config.PaymentGatewayConfig,
) Repositories {
	return &repositories{
		db:                 db,
		log:                log,
		httpClient:         httpClient,
		schedulerClient:    schedulerClient,
		schedulerInspector: schedulerInspector,
		cfgUserService:     cfgUserService,
		cfgPaymentGateway:  cfgPaymentGateway,
	}
}

// ValidateToken implements Repositories. Token validation is delegated to
// the user service over the circuit-breaker client.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}

// CreateCheckoutSession implements Repositories. The gateway session
// references the booking id and seat numbers in its metadata; the
// asynchronous completion callback carries them back.
func (r *repositories) CreateCheckoutSession(ctx context.Context, payload request.CheckoutSession) (response.CheckoutSession, error) {
	payload.CallbackURL = r.cfgPaymentGateway.CallbackURL

	body, err := json.Marshal(payload)
	if err != nil {
		return response.CheckoutSession{}, errors.InternalServerError("error marshal checkout session payload")
	}

	url := fmt.Sprintf("http://%s:%s/api/v1/checkout", r.cfgPaymentGateway.Host, r.cfgPaymentGateway.Port)
	resp, err := r.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return response.CheckoutSession{}, errors.InternalServerError("error create checkout session")
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "error create checkout session", resp.StatusCode)
		return response.CheckoutSession{}, errors.InternalServerError("error create checkout session")
	}

	var session response.CheckoutSession
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&session); err != nil {
		return response.CheckoutSession{}, errors.InternalServerError("error decode checkout session")
	}

	return session, nil
}

// InsertBooking implements Repositories. Bookings are created with
// payment_status pending; state transitions go through the conditional
// updates below.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO bookings (
			id, booking_code, show_id, user_id, seat_numbers,
			sub_total, convenience_fee, donation, coupon_discount, movie_pass_discount,
			total_discount, total_amount, payment_method, payment_status, status,
			qr_code, expires_at
		) VALUES (
			:id, :booking_code, :show_id, :user_id, :seat_numbers,
			:sub_total, :convenience_fee, :donation, :coupon_discount, :movie_pass_discount,
			:total_discount, :total_amount, :payment_method, :payment_status, :status,
			:qr_code, :expires_at
		)
	`, booking)
	if err != nil {
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// CompleteBookingPayment implements Repositories. Conditional on the
// payment still being pending and the booking not cancelled, so a late
// webhook after auto-cancel (or a redelivered one) reads false and the
// caller no-ops.
func (r *repositories) CompleteBookingPayment(ctx context.Context, bookingID string, paymentID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET payment_status = $1, payment_id = $2, updated_at = NOW()
		WHERE id = $3 AND payment_status = $4 AND status = $5
	`, entity.PaymentStatusCompleted, paymentID, bookingID, entity.PaymentStatusPending, entity.BookingStatusConfirmed)
	if err != nil {
		return false, errors.InternalServerError("error complete booking payment")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error complete booking payment")
	}
	return affected > 0, nil
}

// CancelBooking implements Repositories. Cancellation is terminal and the
// conditional update makes it idempotent: a second cancel affects zero
// rows.
func (r *repositories) CancelBooking(ctx context.Context, bookingID string, reason string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, reason = $2, updated_at = NOW()
		WHERE id = $3 AND status <> $1
	`, entity.BookingStatusCancelled, reason, bookingID)
	if err != nil {
		return false, errors.InternalServerError("error cancel booking")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error cancel booking")
	}
	return affected > 0, nil
}

// UpdateBookingTaskID implements Repositories.
func (r *repositories) UpdateBookingTaskID(ctx context.Context, bookingID string, taskID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET task_id = $1, updated_at = NOW() WHERE id = $2
	`, taskID, bookingID)
	if err != nil {
		return errors.InternalServerError("error update booking task id")
	}
	return nil
}

// FindShowInfoByID implements Repositories.
func (r *repositories) FindShowInfoByID(ctx context.Context, showID int64) (entity.ShowInfo, error) {
	query := `SELECT id, theater_id, vendor_id, start_time, status FROM shows WHERE id = $1`
	var info entity.ShowInfo
	err := r.db.GetContext(ctx, &info, query, showID)
	if err == sql.ErrNoRows {
		return entity.ShowInfo{}, errors.NotFound("show not found")
	}
	if err != nil {
		return entity.ShowInfo{}, errors.InternalServerError("error find show by id")
	}
	return info, nil
}

// TheaterAllowsFreeCancellation implements Repositories.
func (r *repositories) TheaterAllowsFreeCancellation(ctx context.Context, theaterID int64) (bool, error) {
	query := `SELECT free_cancellation FROM theaters WHERE id = $1`
	var allowed bool
	err := r.db.GetContext(ctx, &allowed, query, theaterID)
	if err == sql.ErrNoRows {
		return false, errors.NotFound("theater not found")
	}
	if err != nil {
		return false, errors.InternalServerError("error find theater by id")
	}
	return allowed, nil
}

// AddLoyaltyPoints implements Repositories.
func (r *repositories) AddLoyaltyPoints(ctx context.Context, userID int64, points int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET loyalty_points = loyalty_points + $1 WHERE id = $2
	`, points, userID)
	if err != nil {
		return errors.InternalServerError("error add loyalty points")
	}
	return nil
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

// DeleteTaskScheduler implements Repositories. Deleting a task that has
// already run or been removed is not an error.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	err := r.schedulerInspector.DeleteTask("default", taskID)
	if err != nil && !scheduler.TaskMissing(err) {
		return errors.InternalServerError("error delete scheduler task")
	}
	return nil
}
