package handler

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"movie-booking-service/internal/module/wallet/models/request"
	"movie-booking-service/internal/module/wallet/usecases"
	"movie-booking-service/internal/pkg/errors"
	"movie-booking-service/internal/pkg/helpers"
)

type WalletHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *WalletHandler) Balance(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	// call usecase to get wallet balance
	resp, err := h.Usecase.Balance(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get wallet balance: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get wallet balance")
}

func (h *WalletHandler) Transactions(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	// call usecase to list wallet transactions
	resp, err := h.Usecase.Transactions(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list wallet transactions: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list wallet transactions")
}

func (h *WalletHandler) TopUp(ctx *fiber.Ctx) error {
	var req request.TopUp
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to top up wallet
	resp, err := h.Usecase.TopUp(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error top up wallet: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success top up wallet")
}

func (h *WalletHandler) RedeemLoyaltyPoints(ctx *fiber.Ctx) error {
	var req request.RedeemLoyaltyPoints
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	// call usecase to redeem loyalty points
	if err := h.Usecase.RedeemLoyaltyPoints(ctx.UserContext(), userID, &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error redeem loyalty points: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success redeem loyalty points")
}

func (h *WalletHandler) VendorPayout(ctx context.Context, t *asynq.Task) error {
	var req request.VendorPayout
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &req); err != nil {
			h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
			return err
		}
	}

	// call usecase to run vendor payout
	if err := h.Usecase.VendorPayout(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error vendor payout: %v", err))
		return err
	}

	return nil
}
