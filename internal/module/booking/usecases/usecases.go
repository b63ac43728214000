package usecases

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"
	"math"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"movie-booking-service/config"
	"movie-booking-service/internal/module/booking/models/entity"
	"movie-booking-service/internal/module/booking/models/request"
	"movie-booking-service/internal/module/booking/models/response"
	"movie-booking-service/internal/module/booking/repositories"
	passusecases "movie-booking-service/internal/module/pass/usecases"
	showusecases "movie-booking-service/internal/module/show/usecases"
	walletentity "movie-booking-service/internal/module/wallet/models/entity"
	walletusecases "movie-booking-service/internal/module/wallet/usecases"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/helpers"
	"movie-booking-service/internal/pkg/log"
	"movie-booking-service/internal/pkg/scheduler"
)

type usecase struct {
	repo         repositories.Repositories
	log          log.Logger
	publish      message.Publisher
	showUC       showusecases.Usecase
	walletUC     walletusecases.Usecase
	passUC       passusecases.Usecase
	cfgScheduler *config.SchedulerConfig
	cfgPlatform  *config.PlatformConfig
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, userID int64, payload *request.CreateBooking) (response.CreatedBooking, error)
	CancelBooking(ctx context.Context, userID int64, payload *request.CancelBooking) error
	ShowBookings(ctx context.Context, userID int64) ([]response.Booking, error)
	// payment gateway callback, also consumed from the message stream
	PaymentCallback(ctx context.Context, payload *request.PaymentCallback) error
	// scheduler
	CancelPendingBooking(ctx context.Context, payload *request.BookingExpiration) error
}

func New(
	repo repositories.Repositories,
	log log.Logger,
	publish message.Publisher,
	showUC showusecases.Usecase,
	walletUC walletusecases.Usecase,
	passUC passusecases.Usecase,
	cfgScheduler *config.SchedulerConfig,
	cfgPlatform *config.PlatformConfig,
) Usecase {
	return &usecase{
		repo:         repo,
		log:          log,
		publish:      publish,
		showUC:       showUC,
		walletUC:     walletUC,
		passUC:       passUC,
		cfgScheduler: cfgScheduler,
		cfgPlatform:  cfgPlatform,
	}
}

const bookingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateBookingCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = bookingCodeAlphabet[int(buf[i])%len(bookingCodeAlphabet)]
	}
	return "BK-" + string(buf), nil
}

// CreateBooking orchestrates the whole purchase: amount verification, the
// pending booking row, payment, seat confirmation and loyalty credit.
// Seats must already be held by the user via the seat selection endpoint.
func (u *usecase) CreateBooking(ctx context.Context, userID int64, payload *request.CreateBooking) (response.CreatedBooking, error) {
	if payload.ExpiresAt != nil && time.Now().After(*payload.ExpiresAt) {
		return response.CreatedBooking{}, errors.BadRequest("booking session expired, please select seats again")
	}

	switch payload.PaymentMethod {
	case entity.PaymentMethodWallet, entity.PaymentMethodStripe, entity.PaymentMethodOnline:
	default:
		return response.CreatedBooking{}, errors.BadRequest("unsupported payment method")
	}

	show, err := u.repo.FindShowInfoByID(ctx, payload.ShowID)
	if err != nil {
		return response.CreatedBooking{}, err
	}
	if show.Status != "scheduled" {
		return response.CreatedBooking{}, errors.UnprocessableEntity("show is no longer open for booking")
	}

	// the pass discount is recomputed here, never taken from the client
	var passDiscount float64
	if payload.UseMoviePass {
		active, err := u.passUC.IsActive(ctx, userID)
		if err != nil {
			return response.CreatedBooking{}, err
		}
		if active {
			passDiscount = helpers.RoundCurrency(payload.SubTotal * u.cfgPlatform.MoviePassDiscount)
		}
	}

	totalDiscount := helpers.RoundCurrency(payload.CouponDiscount + passDiscount)
	expectedTotal := helpers.RoundCurrency(payload.SubTotal + payload.ConvenienceFee + payload.Donation - totalDiscount)

	// tolerance of one currency unit absorbs client side rounding
	if math.Abs(expectedTotal-payload.TotalAmount) > 1 {
		u.log.Error(ctx, "total amount mismatch", expectedTotal, payload.TotalAmount)
		return response.CreatedBooking{}, errors.UnprocessableEntity("total amount does not match the priced booking")
	}

	bookingCode, err := generateBookingCode()
	if err != nil {
		return response.CreatedBooking{}, errors.InternalServerError("error generate booking code")
	}

	qrPNG, err := qrcode.Encode(bookingCode, qrcode.Medium, 256)
	if err != nil {
		return response.CreatedBooking{}, errors.InternalServerError("error generate qr code")
	}

	booking := entity.Booking{
		ID:                uuid.New(),
		BookingCode:       bookingCode,
		ShowID:            payload.ShowID,
		UserID:            userID,
		SeatNumbers:       payload.SeatNumbers,
		SubTotal:          payload.SubTotal,
		ConvenienceFee:    payload.ConvenienceFee,
		Donation:          payload.Donation,
		CouponDiscount:    payload.CouponDiscount,
		MoviePassDiscount: passDiscount,
		TotalDiscount:     totalDiscount,
		TotalAmount:       expectedTotal,
		PaymentMethod:     payload.PaymentMethod,
		PaymentStatus:     entity.PaymentStatusPending,
		Status:            entity.BookingStatusConfirmed,
		QRCode:            base64.StdEncoding.EncodeToString(qrPNG),
	}
	if payload.ExpiresAt != nil {
		booking.ExpiresAt = sql.NullTime{Time: *payload.ExpiresAt, Valid: true}
	}

	if err := u.repo.InsertBooking(ctx, booking); err != nil {
		return response.CreatedBooking{}, err
	}

	// the expiration task is scheduled before any payment attempt, so a
	// crash between payment steps still leaves a reaper for this booking
	expPayload, _ := json.Marshal(request.BookingExpiration{BookingID: booking.ID.String()})
	paymentTTL := time.Duration(u.cfgScheduler.PaymentTTLMinutes) * time.Minute
	taskID, err := u.repo.SetTaskScheduler(ctx, paymentTTL, scheduler.TypeCancelPendingBooking, expPayload)
	if err != nil {
		return response.CreatedBooking{}, err
	}
	if err := u.repo.UpdateBookingTaskID(ctx, booking.ID.String(), taskID); err != nil {
		return response.CreatedBooking{}, err
	}
	booking.TaskID.Valid = true
	booking.TaskID.String = taskID

	resp := response.CreatedBooking{
		BookingID:     booking.ID.String(),
		BookingCode:   bookingCode,
		QRCode:        booking.QRCode,
		PaymentStatus: entity.PaymentStatusPending,
		TotalAmount:   expectedTotal,
	}

	if payload.PaymentMethod != entity.PaymentMethodWallet {
		session, err := u.repo.CreateCheckoutSession(ctx, request.CheckoutSession{
			UserID:      userID,
			BookingID:   booking.ID.String(),
			Amount:      expectedTotal,
			ShowID:      payload.ShowID,
			SeatNumbers: payload.SeatNumbers,
		})
		if err != nil {
			return response.CreatedBooking{}, err
		}
		resp.RedirectURL = session.RedirectURL
		return resp, nil
	}

	// wallet payment: the conditional debit either succeeds atomically or
	// the booking stays pending for the reaper task
	err = u.walletUC.PushTransaction(ctx, walletentity.WalletTransaction{
		UserID: userID,
		Amount: expectedTotal,
		Type:   walletentity.TransactionTypeDebit,
		Source: walletentity.TransactionSourceBooking,
		Remark: fmt.Sprintf("payment for booking %s", bookingCode),
	})
	if err != nil {
		return response.CreatedBooking{}, err
	}

	if err := u.finalizePayment(ctx, booking, "wallet"); err != nil {
		return response.CreatedBooking{}, err
	}

	resp.PaymentStatus = entity.PaymentStatusCompleted
	return resp, nil
}

// finalizePayment runs the post-payment steps shared by the wallet path
// and the gateway callback: mark paid, confirm seats, credit loyalty
// points, drop the reaper task, notify.
func (u *usecase) finalizePayment(ctx context.Context, booking entity.Booking, paymentID string) error {
	changed, err := u.repo.CompleteBookingPayment(ctx, booking.ID.String(), paymentID)
	if err != nil {
		return err
	}
	if !changed {
		// already completed or cancelled, nothing left to do here
		u.log.Info(ctx, "payment completion was a no-op", booking.ID.String())
		return nil
	}

	if err := u.showUC.ConfirmBookedSeats(ctx, booking.ShowID, booking.SeatNumbers); err != nil {
		return err
	}

	points := u.cfgPlatform.LoyaltyPointsPerSeat * len(booking.SeatNumbers)
	if err := u.repo.AddLoyaltyPoints(ctx, booking.UserID, points); err != nil {
		u.log.Error(ctx, "error add loyalty points", booking.ID.String(), err)
	}

	if booking.TaskID.Valid {
		if err := u.repo.DeleteTaskScheduler(ctx, booking.TaskID.String); err != nil {
			u.log.Error(ctx, "error delete expiration task", booking.ID.String(), err)
		}
	}

	u.notify(ctx, request.BookingNotification{
		BookingID: booking.ID.String(),
		UserID:    booking.UserID,
		Message:   fmt.Sprintf("booking %s is confirmed and paid", booking.BookingCode),
	})

	return nil
}

// CancelBooking cancels the caller's booking, frees the seats and, when
// the booking was already paid, refunds the total minus the cancellation
// fee back to the wallet. Re-cancelling is a no-op so a refund can never
// be issued twice.
func (u *usecase) CancelBooking(ctx context.Context, userID int64, payload *request.CancelBooking) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return errors.ForbiddenError("booking belongs to another user")
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil
	}

	show, err := u.repo.FindShowInfoByID(ctx, booking.ShowID)
	if err != nil {
		return err
	}
	if show.Status != "scheduled" {
		return errors.UnprocessableEntity("show has already started")
	}

	allowed, err := u.repo.TheaterAllowsFreeCancellation(ctx, show.TheaterID)
	if err != nil {
		return err
	}
	if !allowed {
		return errors.UnprocessableEntity("this theater does not allow cancellation")
	}

	reason := payload.Reason
	if reason == "" {
		reason = "Cancelled by user"
	}

	changed, err := u.repo.CancelBooking(ctx, booking.ID.String(), reason)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if booking.TaskID.Valid {
		if err := u.repo.DeleteTaskScheduler(ctx, booking.TaskID.String); err != nil {
			u.log.Error(ctx, "error delete expiration task", booking.ID.String(), err)
		}
	}

	if err := u.showUC.ReleaseSeats(ctx, booking.ShowID, booking.UserID, booking.SeatNumbers); err != nil {
		u.log.Error(ctx, "error release seats on cancellation", booking.ID.String(), err)
	}

	if booking.PaymentStatus == entity.PaymentStatusCompleted {
		refund := helpers.RoundCurrency(booking.TotalAmount * (1 - u.cfgPlatform.CancellationFeeRate))
		err := u.walletUC.PushTransaction(ctx, walletentity.WalletTransaction{
			UserID: booking.UserID,
			Amount: refund,
			Type:   walletentity.TransactionTypeCredit,
			Source: walletentity.TransactionSourceBooking,
			Remark: fmt.Sprintf("refund for booking %s", booking.BookingCode),
		})
		if err != nil {
			return err
		}
	}

	u.notify(ctx, request.BookingNotification{
		BookingID: booking.ID.String(),
		UserID:    booking.UserID,
		Message:   fmt.Sprintf("booking %s has been cancelled", booking.BookingCode),
	})

	return nil
}

// ShowBookings lists the caller's bookings, newest first.
func (u *usecase) ShowBookings(ctx context.Context, userID int64) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		item := response.Booking{
			BookingID:         b.ID.String(),
			BookingCode:       b.BookingCode,
			ShowID:            b.ShowID,
			SeatNumbers:       b.SeatNumbers,
			SubTotal:          b.SubTotal,
			ConvenienceFee:    b.ConvenienceFee,
			Donation:          b.Donation,
			CouponDiscount:    b.CouponDiscount,
			MoviePassDiscount: b.MoviePassDiscount,
			TotalAmount:       b.TotalAmount,
			PaymentMethod:     b.PaymentMethod,
			PaymentStatus:     b.PaymentStatus,
			Status:            b.Status,
			CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		}
		if b.Reason.Valid {
			item.Reason = b.Reason.String
		}
		resp = append(resp, item)
	}

	return resp, nil
}

// PaymentCallback completes a gateway payment. Redelivered callbacks and
// callbacks arriving after the booking was auto-cancelled read a zero-row
// update and fall through without side effects.
func (u *usecase) PaymentCallback(ctx context.Context, payload *request.PaymentCallback) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}

	return u.finalizePayment(ctx, booking, payload.PaymentID)
}

// CancelPendingBooking is the cancel_pending_booking task handler. It
// reaps bookings whose payment never completed within the payment window.
func (u *usecase) CancelPendingBooking(ctx context.Context, payload *request.BookingExpiration) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		if errors.Code(err) == 404 {
			return nil
		}
		return err
	}

	if booking.PaymentStatus == entity.PaymentStatusCompleted || booking.Status == entity.BookingStatusCancelled {
		return nil
	}

	changed, err := u.repo.CancelBooking(ctx, booking.ID.String(), "Payment not completed within time period")
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err := u.showUC.ReleaseSeats(ctx, booking.ShowID, booking.UserID, booking.SeatNumbers); err != nil {
		u.log.Error(ctx, "error release seats on expiration", booking.ID.String(), err)
	}

	u.notify(ctx, request.BookingNotification{
		BookingID: booking.ID.String(),
		UserID:    booking.UserID,
		Message:   fmt.Sprintf("booking %s expired because payment was not completed", booking.BookingCode),
	})

	return nil
}

func (u *usecase) notify(ctx context.Context, notification request.BookingNotification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		u.log.Error(ctx, "error marshal notification", err)
		return
	}
	if err := u.publish.Publish("notification", message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish notification", err)
	}
}
