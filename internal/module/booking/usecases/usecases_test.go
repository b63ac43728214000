package usecases_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"movie-booking-service/config"
	"movie-booking-service/internal/module/booking/mocks"
	"movie-booking-service/internal/module/booking/models/entity"
	"movie-booking-service/internal/module/booking/models/request"
	"movie-booking-service/internal/module/booking/models/response"
	"movie-booking-service/internal/module/booking/usecases"
	passmocks "movie-booking-service/internal/module/pass/mocks"
	showmocks "movie-booking-service/internal/module/show/mocks"
	walletentity "movie-booking-service/internal/module/wallet/models/entity"
	walletmocks "movie-booking-service/internal/module/wallet/mocks"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/log"
	log_internal "movie-booking-service/internal/pkg/log"
)

var (
	uc           usecases.Usecase
	repoMock     *mocks.Repositories
	showUCMock   *showmocks.Usecase
	walletUCMock *walletmocks.Usecase
	passUCMock   *passmocks.Usecase
	logMock      log.Logger
	p            message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	showUCMock = new(showmocks.Usecase)
	walletUCMock = new(walletmocks.Usecase)
	passUCMock = new(passmocks.Usecase)
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	cfgScheduler := &config.SchedulerConfig{
		SeatHoldTTLMinutes: 5,
		PaymentTTLMinutes:  10,
	}
	cfgPlatform := &config.PlatformConfig{
		AdminUserID:          1,
		CommissionRate:       0.15,
		CancellationFeeRate:  0.15,
		MoviePassDiscount:    0.08,
		LoyaltyPointsPerSeat: 5,
	}
	uc = usecases.New(repoMock, logMock, p, showUCMock, walletUCMock, passUCMock, cfgScheduler, cfgPlatform)
}

func teardown() {
	repoMock = nil
	showUCMock = nil
	walletUCMock = nil
	passUCMock = nil
	uc = nil
}

func scheduledShow() entity.ShowInfo {
	return entity.ShowInfo{
		ID:        1,
		TheaterID: 2,
		VendorID:  3,
		StartTime: time.Now().Add(2 * time.Hour),
		Status:    "scheduled",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("wallet payment success", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		holdExpiry := time.Now().Add(4 * time.Minute)
		payload := request.CreateBooking{
			ShowID:         1,
			SeatNumbers:    []string{"A1", "A2"},
			PaymentMethod:  entity.PaymentMethodWallet,
			SubTotal:       900,
			ConvenienceFee: 50,
			Donation:       50,
			TotalAmount:    1000,
			ExpiresAt:      &holdExpiry,
		}

		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)
		repoMock.On("InsertBooking", mock.Anything, mock.MatchedBy(func(booking entity.Booking) bool {
			// the hold expiry travels into the persisted row
			return booking.ExpiresAt.Valid && booking.ExpiresAt.Time.Equal(holdExpiry)
		})).Return(nil)
		repoMock.On("SetTaskScheduler", mock.Anything, 10*time.Minute, "cancel_pending_booking", mock.Anything).Return("task-1", nil)
		repoMock.On("UpdateBookingTaskID", mock.Anything, mock.Anything, "task-1").Return(nil)
		walletUCMock.On("PushTransaction", mock.Anything, mock.MatchedBy(func(trx walletentity.WalletTransaction) bool {
			return trx.Type == walletentity.TransactionTypeDebit &&
				trx.Source == walletentity.TransactionSourceBooking &&
				trx.Amount == float64(1000)
		})).Return(nil)
		repoMock.On("CompleteBookingPayment", mock.Anything, mock.Anything, "wallet").Return(true, nil)
		showUCMock.On("ConfirmBookedSeats", mock.Anything, int64(1), []string{"A1", "A2"}).Return(nil)
		repoMock.On("AddLoyaltyPoints", mock.Anything, int64(7), 10).Return(nil)
		repoMock.On("DeleteTaskScheduler", mock.Anything, "task-1").Return(nil)

		resp, err := uc.CreateBooking(ctx, 7, &payload)

		assert.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusCompleted, resp.PaymentStatus)
		assert.Equal(t, float64(1000), resp.TotalAmount)
		assert.True(t, strings.HasPrefix(resp.BookingCode, "BK-"))
		assert.NotEmpty(t, resp.QRCode)
		repoMock.AssertExpectations(t)
		walletUCMock.AssertExpectations(t)
		showUCMock.AssertExpectations(t)
	})

	t.Run("insufficient balance leaves booking pending", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.CreateBooking{
			ShowID:        1,
			SeatNumbers:   []string{"A1"},
			PaymentMethod: entity.PaymentMethodWallet,
			SubTotal:      500,
			TotalAmount:   500,
		}

		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)
		repoMock.On("InsertBooking", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("SetTaskScheduler", mock.Anything, 10*time.Minute, "cancel_pending_booking", mock.Anything).Return("task-1", nil)
		repoMock.On("UpdateBookingTaskID", mock.Anything, mock.Anything, "task-1").Return(nil)
		walletUCMock.On("PushTransaction", mock.Anything, mock.Anything).Return(errors.UnprocessableEntity("insufficient balance"))

		_, err := uc.CreateBooking(ctx, 7, &payload)

		assert.Error(t, err)
		assert.Equal(t, 422, errors.Code(err))
		repoMock.AssertNotCalled(t, "CompleteBookingPayment", mock.Anything, mock.Anything, mock.Anything)
		showUCMock.AssertNotCalled(t, "ConfirmBookedSeats", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("amount mismatch beyond tolerance", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.CreateBooking{
			ShowID:         1,
			SeatNumbers:    []string{"A1"},
			PaymentMethod:  entity.PaymentMethodWallet,
			SubTotal:       900,
			ConvenienceFee: 50,
			Donation:       50,
			TotalAmount:    990,
		}

		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)

		_, err := uc.CreateBooking(ctx, 7, &payload)

		assert.Error(t, err)
		assert.Equal(t, 422, errors.Code(err))
		repoMock.AssertNotCalled(t, "InsertBooking", mock.Anything, mock.Anything)
	})

	t.Run("amount within rounding tolerance is accepted", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.CreateBooking{
			ShowID:        1,
			SeatNumbers:   []string{"A1"},
			PaymentMethod: entity.PaymentMethodWallet,
			SubTotal:      1000,
			TotalAmount:   999.5,
		}

		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)
		repoMock.On("InsertBooking", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("SetTaskScheduler", mock.Anything, 10*time.Minute, "cancel_pending_booking", mock.Anything).Return("task-1", nil)
		repoMock.On("UpdateBookingTaskID", mock.Anything, mock.Anything, "task-1").Return(nil)
		walletUCMock.On("PushTransaction", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("CompleteBookingPayment", mock.Anything, mock.Anything, "wallet").Return(true, nil)
		showUCMock.On("ConfirmBookedSeats", mock.Anything, int64(1), []string{"A1"}).Return(nil)
		repoMock.On("AddLoyaltyPoints", mock.Anything, int64(7), 5).Return(nil)
		repoMock.On("DeleteTaskScheduler", mock.Anything, "task-1").Return(nil)

		_, err := uc.CreateBooking(ctx, 7, &payload)

		assert.NoError(t, err)
	})

	t.Run("movie pass discount is recomputed server side", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.CreateBooking{
			ShowID:        1,
			SeatNumbers:   []string{"A1"},
			PaymentMethod: entity.PaymentMethodWallet,
			SubTotal:      1000,
			UseMoviePass:  true,
			TotalAmount:   920,
		}

		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)
		passUCMock.On("IsActive", mock.Anything, int64(7)).Return(true, nil)
		repoMock.On("InsertBooking", mock.Anything, mock.MatchedBy(func(b entity.Booking) bool {
			return b.MoviePassDiscount == float64(80) && b.TotalAmount == float64(920)
		})).Return(nil)
		repoMock.On("SetTaskScheduler", mock.Anything, 10*time.Minute, "cancel_pending_booking", mock.Anything).Return("task-1", nil)
		repoMock.On("UpdateBookingTaskID", mock.Anything, mock.Anything, "task-1").Return(nil)
		walletUCMock.On("PushTransaction", mock.Anything, mock.MatchedBy(func(trx walletentity.WalletTransaction) bool {
			return trx.Amount == float64(920)
		})).Return(nil)
		repoMock.On("CompleteBookingPayment", mock.Anything, mock.Anything, "wallet").Return(true, nil)
		showUCMock.On("ConfirmBookedSeats", mock.Anything, int64(1), []string{"A1"}).Return(nil)
		repoMock.On("AddLoyaltyPoints", mock.Anything, int64(7), 5).Return(nil)
		repoMock.On("DeleteTaskScheduler", mock.Anything, "task-1").Return(nil)

		resp, err := uc.CreateBooking(ctx, 7, &payload)

		assert.NoError(t, err)
		assert.Equal(t, float64(920), resp.TotalAmount)
		repoMock.AssertExpectations(t)
	})

	t.Run("gateway payment returns redirect and stays pending", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		payload := request.CreateBooking{
			ShowID:        1,
			SeatNumbers:   []string{"A1"},
			PaymentMethod: entity.PaymentMethodStripe,
			SubTotal:      500,
			TotalAmount:   500,
		}

		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)
		repoMock.On("InsertBooking", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("SetTaskScheduler", mock.Anything, 10*time.Minute, "cancel_pending_booking", mock.Anything).Return("task-1", nil)
		repoMock.On("UpdateBookingTaskID", mock.Anything, mock.Anything, "task-1").Return(nil)
		repoMock.On("CreateCheckoutSession", mock.Anything, mock.Anything).Return(response.CheckoutSession{
			SessionID:   "sess_1",
			RedirectURL: "https://pay.example.com/sess_1",
		}, nil)

		resp, err := uc.CreateBooking(ctx, 7, &payload)

		assert.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusPending, resp.PaymentStatus)
		assert.Equal(t, "https://pay.example.com/sess_1", resp.RedirectURL)
		walletUCMock.AssertNotCalled(t, "PushTransaction", mock.Anything, mock.Anything)
	})

	t.Run("expired seat hold session is rejected", func(t *testing.T) {
		setup()
		defer teardown()

		past := time.Now().Add(-time.Minute)
		payload := request.CreateBooking{
			ShowID:        1,
			SeatNumbers:   []string{"A1"},
			PaymentMethod: entity.PaymentMethodWallet,
			SubTotal:      500,
			TotalAmount:   500,
			ExpiresAt:     &past,
		}

		_, err := uc.CreateBooking(context.Background(), 7, &payload)

		assert.Error(t, err)
		assert.Equal(t, 400, errors.Code(err))
		repoMock.AssertNotCalled(t, "InsertBooking", mock.Anything, mock.Anything)
	})
}

func TestCancelBooking(t *testing.T) {
	bookingID := uuid.New()

	paidBooking := func() entity.Booking {
		return entity.Booking{
			ID:            bookingID,
			BookingCode:   "BK-TESTCODE",
			ShowID:        1,
			UserID:        7,
			SeatNumbers:   []string{"A1", "A2"},
			TotalAmount:   1000,
			PaymentMethod: entity.PaymentMethodWallet,
			PaymentStatus: entity.PaymentStatusCompleted,
			Status:        entity.BookingStatusConfirmed,
			TaskID:        sql.NullString{String: "task-1", Valid: true},
		}
	}

	t.Run("refund is total minus cancellation fee", func(t *testing.T) {
		setup()
		defer teardown()

		ctx := context.Background()
		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(paidBooking(), nil)
		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)
		repoMock.On("TheaterAllowsFreeCancellation", mock.Anything, int64(2)).Return(true, nil)
		repoMock.On("CancelBooking", mock.Anything, bookingID.String(), "Cancelled by user").Return(true, nil)
		repoMock.On("DeleteTaskScheduler", mock.Anything, "task-1").Return(nil)
		showUCMock.On("ReleaseSeats", mock.Anything, int64(1), int64(7), []string{"A1", "A2"}).Return(nil)
		walletUCMock.On("PushTransaction", mock.Anything, mock.MatchedBy(func(trx walletentity.WalletTransaction) bool {
			return trx.Type == walletentity.TransactionTypeCredit &&
				trx.Source == walletentity.TransactionSourceBooking &&
				trx.Amount == float64(850)
		})).Return(nil)

		err := uc.CancelBooking(ctx, 7, &request.CancelBooking{BookingID: bookingID.String()})

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
		walletUCMock.AssertExpectations(t)
		showUCMock.AssertExpectations(t)
	})

	t.Run("cancelling an unpaid booking issues no refund", func(t *testing.T) {
		setup()
		defer teardown()

		booking := paidBooking()
		booking.PaymentStatus = entity.PaymentStatusPending

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(booking, nil)
		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)
		repoMock.On("TheaterAllowsFreeCancellation", mock.Anything, int64(2)).Return(true, nil)
		repoMock.On("CancelBooking", mock.Anything, bookingID.String(), "Cancelled by user").Return(true, nil)
		repoMock.On("DeleteTaskScheduler", mock.Anything, "task-1").Return(nil)
		showUCMock.On("ReleaseSeats", mock.Anything, int64(1), int64(7), []string{"A1", "A2"}).Return(nil)

		err := uc.CancelBooking(context.Background(), 7, &request.CancelBooking{BookingID: bookingID.String()})

		assert.NoError(t, err)
		walletUCMock.AssertNotCalled(t, "PushTransaction", mock.Anything, mock.Anything)
	})

	t.Run("already cancelled booking is a no-op", func(t *testing.T) {
		setup()
		defer teardown()

		booking := paidBooking()
		booking.Status = entity.BookingStatusCancelled

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(booking, nil)

		err := uc.CancelBooking(context.Background(), 7, &request.CancelBooking{BookingID: bookingID.String()})

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything, mock.Anything)
		walletUCMock.AssertNotCalled(t, "PushTransaction", mock.Anything, mock.Anything)
	})

	t.Run("lost cancel race issues no second refund", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(paidBooking(), nil)
		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)
		repoMock.On("TheaterAllowsFreeCancellation", mock.Anything, int64(2)).Return(true, nil)
		repoMock.On("CancelBooking", mock.Anything, bookingID.String(), "Cancelled by user").Return(false, nil)

		err := uc.CancelBooking(context.Background(), 7, &request.CancelBooking{BookingID: bookingID.String()})

		assert.NoError(t, err)
		walletUCMock.AssertNotCalled(t, "PushTransaction", mock.Anything, mock.Anything)
	})

	t.Run("booking of another user is forbidden", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(paidBooking(), nil)

		err := uc.CancelBooking(context.Background(), 99, &request.CancelBooking{BookingID: bookingID.String()})

		assert.Error(t, err)
		assert.Equal(t, 403, errors.Code(err))
	})

	t.Run("theater without free cancellation rejects", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(paidBooking(), nil)
		repoMock.On("FindShowInfoByID", mock.Anything, int64(1)).Return(scheduledShow(), nil)
		repoMock.On("TheaterAllowsFreeCancellation", mock.Anything, int64(2)).Return(false, nil)

		err := uc.CancelBooking(context.Background(), 7, &request.CancelBooking{BookingID: bookingID.String()})

		assert.Error(t, err)
		assert.Equal(t, 422, errors.Code(err))
		repoMock.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaymentCallback(t *testing.T) {
	bookingID := uuid.New()

	pendingBooking := func() entity.Booking {
		return entity.Booking{
			ID:            bookingID,
			BookingCode:   "BK-TESTCODE",
			ShowID:        1,
			UserID:        7,
			SeatNumbers:   []string{"A1"},
			TotalAmount:   500,
			PaymentMethod: entity.PaymentMethodStripe,
			PaymentStatus: entity.PaymentStatusPending,
			Status:        entity.BookingStatusConfirmed,
			TaskID:        sql.NullString{String: "task-1", Valid: true},
		}
	}

	t.Run("completes the payment and confirms seats", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(pendingBooking(), nil)
		repoMock.On("CompleteBookingPayment", mock.Anything, bookingID.String(), "pay_1").Return(true, nil)
		showUCMock.On("ConfirmBookedSeats", mock.Anything, int64(1), []string{"A1"}).Return(nil)
		repoMock.On("AddLoyaltyPoints", mock.Anything, int64(7), 5).Return(nil)
		repoMock.On("DeleteTaskScheduler", mock.Anything, "task-1").Return(nil)

		err := uc.PaymentCallback(context.Background(), &request.PaymentCallback{
			BookingID: bookingID.String(),
			PaymentID: "pay_1",
		})

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("redelivered callback is a no-op", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(pendingBooking(), nil)
		repoMock.On("CompleteBookingPayment", mock.Anything, bookingID.String(), "pay_1").Return(false, nil)

		err := uc.PaymentCallback(context.Background(), &request.PaymentCallback{
			BookingID: bookingID.String(),
			PaymentID: "pay_1",
		})

		assert.NoError(t, err)
		showUCMock.AssertNotCalled(t, "ConfirmBookedSeats", mock.Anything, mock.Anything, mock.Anything)
		repoMock.AssertNotCalled(t, "AddLoyaltyPoints", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCancelPendingBooking(t *testing.T) {
	bookingID := uuid.New()

	t.Run("paid booking is left alone", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(entity.Booking{
			ID:            bookingID,
			UserID:        7,
			ShowID:        1,
			PaymentStatus: entity.PaymentStatusCompleted,
			Status:        entity.BookingStatusConfirmed,
		}, nil)

		err := uc.CancelPendingBooking(context.Background(), &request.BookingExpiration{BookingID: bookingID.String()})

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unpaid booking is reaped and seats released", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(entity.Booking{
			ID:            bookingID,
			BookingCode:   "BK-TESTCODE",
			UserID:        7,
			ShowID:        1,
			SeatNumbers:   []string{"A1"},
			PaymentStatus: entity.PaymentStatusPending,
			Status:        entity.BookingStatusConfirmed,
		}, nil)
		repoMock.On("CancelBooking", mock.Anything, bookingID.String(), "Payment not completed within time period").Return(true, nil)
		showUCMock.On("ReleaseSeats", mock.Anything, int64(1), int64(7), []string{"A1"}).Return(nil)

		err := uc.CancelPendingBooking(context.Background(), &request.BookingExpiration{BookingID: bookingID.String()})

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
		showUCMock.AssertExpectations(t)
	})

	t.Run("missing booking does not fail the task", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingByID", mock.Anything, bookingID.String()).Return(entity.Booking{}, errors.NotFound("booking not found"))

		err := uc.CancelPendingBooking(context.Background(), &request.BookingExpiration{BookingID: bookingID.String()})

		assert.NoError(t, err)
	})
}
