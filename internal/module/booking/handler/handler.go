package handler

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"movie-booking-service/internal/module/booking/models/request"
	"movie-booking-service/internal/module/booking/usecases"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/helpers"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to create booking
	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	var req request.CancelBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to cancel booking
	if err := h.Usecase.CancelBooking(ctx.UserContext(), userID, &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success cancel booking")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	// call usecase to list bookings
	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list bookings")
}

// PaymentCallback receives the payment gateway webhook on the private
// route group. The gateway retries on non-200, the usecase tolerates the
// redelivery.
func (h *BookingHandler) PaymentCallback(ctx *fiber.Ctx) error {
	var req request.PaymentCallback
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// call usecase to complete payment
	if err := h.Usecase.PaymentCallback(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error payment callback: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success payment callback")
}

// ConsumePaymentCallbackQueue handles payment completions published by
// the gateway to the message stream instead of the webhook.
func (h *BookingHandler) ConsumePaymentCallbackQueue(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.PaymentCallback
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(context.Background()).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(context.Background()).Error(fmt.Sprintf("error validate payload: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	// call usecase to complete payment
	if err := h.Usecase.PaymentCallback(context.Background(), &req); err != nil {
		h.Log.Ctx(context.Background()).Error(fmt.Sprintf("error payment callback: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

// publishPoisoned parks an unprocessable callback message on the poisoned
// topic with the failure attached, so it can be inspected and replayed.
func (h *BookingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: "payment_callback",
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(context.Background()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

func (h *BookingHandler) CancelPendingBooking(ctx context.Context, t *asynq.Task) error {
	var req request.BookingExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	// call usecase to cancel the unpaid booking
	if err := h.Usecase.CancelPendingBooking(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error cancel pending booking: %v", err))
		return err
	}

	return nil
}
