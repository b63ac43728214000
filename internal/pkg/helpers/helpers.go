package helpers

import (
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"movie-booking-service/internal/pkg/errors"
)

type SuccessResp struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

type ErrorResp struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(SuccessResp{
		Data:    data,
		Message: message,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.Code(err)
	if log != nil {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("request failed: %v", err))
	}
	return ctx.Status(code).JSON(ErrorResp{
		Error: err.Error(),
		Code:  code,
	})
}

// DurationCalculation returns how long from now until t, floored at zero so
// scheduler enqueues never go negative.
func DurationCalculation(t time.Time) time.Duration {
	d := time.Until(t)
	if d < 0 {
		return 0
	}
	return d
}

// RoundCurrency rounds a monetary amount to 2 decimal places. Balances are
// persisted rounded after every mutation.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
