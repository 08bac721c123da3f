package helpers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/internal/pkg/errors"
)

type response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(response{
		Data:    data,
		Message: message,
	})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(response{
		Data:    data,
		Message: message,
	})
}

// RespError maps typed errors to their status code and degrades anything
// else to a generic 500 so internals never leak to the caller.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	if typed, ok := errors.FromError(err); ok {
		return ctx.Status(typed.Code).JSON(response{
			Data:    nil,
			Message: typed.Message,
		})
	}

	log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("unhandled error: %v", err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(response{
		Data:    nil,
		Message: "internal server error",
	})
}

// DurationCalculation returns how far in the future t is, floored at zero
// so scheduler enqueues never get a negative delay.
func DurationCalculation(t time.Time) time.Duration {
	d := time.Until(t)
	if d < 0 {
		return 0
	}
	return d
}

// FormatCents renders an integer minor-unit amount as a dollar string.
func FormatCents(amount int64) string {
	return fmt.Sprintf("$%d.%02d", amount/100, amount%100)
}
