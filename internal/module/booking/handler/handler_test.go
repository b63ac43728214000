package handler_test

import (
	"context"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"

	"movie-booking-service/internal/module/booking/handler"
	"movie-booking-service/internal/module/booking/mocks"
	"movie-booking-service/internal/module/booking/models/request"
	"movie-booking-service/internal/module/booking/models/response"
	log_internal "movie-booking-service/internal/pkg/log"
)

var (
	h             *handler.BookingHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
	p             *mockPublisher
)

type mockPublisher struct {
	published map[string][]*message.Message
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.published[topic] = append(m.published[topic], messages...)
	return nil
}

func NewMockPublisher() *mockPublisher {
	return &mockPublisher{published: make(map[string][]*message.Message)}
}

func setup() {
	ucm = &mocks.Usecase{}
	logMock := log_internal.Setup()
	validatorTest = validator.New()
	p = NewMockPublisher()
	h = &handler.BookingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
		Publish:   p,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	p = nil
	h = nil
	app = nil
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.CreateBooking{
			ShowID:        1,
			SeatNumbers:   []string{"A1", "A2"},
			PaymentMethod: "wallet",
			SubTotal:      900,
			TotalAmount:   900,
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(7))

		ucm.On("CreateBooking", mock.Anything, int64(7), &payload).Return(response.CreatedBooking{
			BookingID:     "00000000-0000-0000-0000-000000000000",
			BookingCode:   "BK-TESTCODE",
			PaymentStatus: "completed",
			TotalAmount:   900,
		}, nil)

		err := h.CreateBooking(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
		ucm.AssertExpectations(t)
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody([]byte(`{"show_id": 1}`))
		ctx.Locals("user_id", int64(7))

		err := h.CreateBooking(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestCancelBooking(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.CancelBooking{
			BookingID: "00000000-0000-0000-0000-000000000000",
			Reason:    "change of plans",
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/bookings/cancel")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(7))

		ucm.On("CancelBooking", mock.Anything, int64(7), &payload).Return(nil)

		err := h.CancelBooking(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
		ucm.AssertExpectations(t)
	})
}

func TestShowBookings(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetMethod("GET")
		ctx.Locals("user_id", int64(7))

		ucm.On("ShowBookings", mock.Anything, int64(7)).Return([]response.Booking{
			{BookingCode: "BK-TESTCODE", Status: "confirmed"},
		}, nil)

		err := h.ShowBookings(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
		ucm.AssertExpectations(t)
	})
}

func TestPaymentCallback(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.PaymentCallback{
			BookingID: "00000000-0000-0000-0000-000000000000",
			PaymentID: "pay_1",
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().SetRequestURI("/api/private/payment/callback")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		ucm.On("PaymentCallback", mock.Anything, &payload).Return(nil)

		err := h.PaymentCallback(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
		ucm.AssertExpectations(t)
	})
}

func TestConsumePaymentCallbackQueue(t *testing.T) {
	t.Run("success publishes nothing", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.PaymentCallback{
			BookingID: "00000000-0000-0000-0000-000000000000",
			PaymentID: "pay_1",
		}
		jsonData, _ := json.Marshal(payload)

		ucm.On("PaymentCallback", mock.Anything, &payload).Return(nil)

		err := h.ConsumePaymentCallbackQueue(message.NewMessage("1", jsonData))

		assert.NoError(t, err)
		assert.Empty(t, p.published["poisoned_queue"])
		ucm.AssertExpectations(t)
	})

	t.Run("malformed payload lands on the poisoned queue", func(t *testing.T) {
		setup()
		defer teardown()

		err := h.ConsumePaymentCallbackQueue(message.NewMessage("1", []byte("not json")))

		assert.Error(t, err)
		assert.Len(t, p.published["poisoned_queue"], 1)

		var poisoned request.PoisonedQueue
		assert.NoError(t, json.Unmarshal(p.published["poisoned_queue"][0].Payload, &poisoned))
		assert.Equal(t, "payment_callback", poisoned.TopicTarget)
		assert.NotEmpty(t, poisoned.ErrorMsg)
		ucm.AssertNotCalled(t, "PaymentCallback", mock.Anything, mock.Anything)
	})

	t.Run("usecase failure lands on the poisoned queue", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.PaymentCallback{
			BookingID: "00000000-0000-0000-0000-000000000000",
			PaymentID: "pay_1",
		}
		jsonData, _ := json.Marshal(payload)

		ucm.On("PaymentCallback", mock.Anything, &payload).Return(assert.AnError)

		err := h.ConsumePaymentCallbackQueue(message.NewMessage("1", jsonData))

		assert.Error(t, err)
		assert.Len(t, p.published["poisoned_queue"], 1)
		ucm.AssertExpectations(t)
	})
}

func TestCancelPendingBookingTask(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.BookingExpiration{
			BookingID: "00000000-0000-0000-0000-000000000000",
		}
		jsonData, _ := json.Marshal(payload)
		task := asynq.NewTask("cancel_pending_booking", jsonData)

		ucm.On("CancelPendingBooking", mock.Anything, &payload).Return(nil)

		err := h.CancelPendingBooking(context.Background(), task)

		assert.NoError(t, err)
		ucm.AssertExpectations(t)
	})
}
