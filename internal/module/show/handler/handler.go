package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"movie-booking-service/internal/module/show/models/request"
	"movie-booking-service/internal/module/show/usecases"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/helpers"
)

type ShowHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ShowHandler) CreateShow(ctx *fiber.Ctx) error {
	var req request.CreateShow
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	vendorID := ctx.Locals("user_id").(int64)

	// call usecase to create show
	resp, err := h.Usecase.CreateShow(ctx.UserContext(), vendorID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create show: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create show")
}

func (h *ShowHandler) SeatMap(ctx *fiber.Ctx) error {
	showID, err := strconv.ParseInt(ctx.Params("show_id"), 10, 64)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse show id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse show id"))
	}

	// call usecase to get seat map
	resp, err := h.Usecase.SeatMap(ctx.UserContext(), showID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get seat map: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get seat map")
}

func (h *ShowHandler) SelectSeats(ctx *fiber.Ctx) error {
	var req request.SelectSeats
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to select seats
	resp, err := h.Usecase.SelectSeats(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error select seats: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success select seats")
}

func (h *ShowHandler) StartShow(ctx context.Context, t *asynq.Task) error {
	var req request.ShowTask
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	// call usecase to start show
	if err := h.Usecase.StartShow(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error start show: %v", err))
		return err
	}

	return nil
}

func (h *ShowHandler) CompleteShow(ctx context.Context, t *asynq.Task) error {
	var req request.ShowTask
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	// call usecase to complete show
	if err := h.Usecase.CompleteShow(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error complete show: %v", err))
		return err
	}

	return nil
}

func (h *ShowHandler) ReleaseExpiredSeats(ctx context.Context, t *asynq.Task) error {
	var req request.ShowTask
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	// call usecase to release expired seats
	if err := h.Usecase.ReleaseExpiredSeats(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error release expired seats: %v", err))
		return err
	}

	return nil
}
