package helpers

import (
	"time"

	"turf-booking-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.StatusCode(err)
	if code >= fiber.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error("request failed", zap.Error(err), zap.String("path", ctx.Path()))
	}
	return ctx.Status(code).JSON(Response{
		Success: false,
		Message: errors.Message(err),
	})
}

// DurationCalculation returns how long until t, never negative.
func DurationCalculation(t time.Time) time.Duration {
	d := time.Until(t)
	if d < 0 {
		return 0
	}
	return d
}

// ClientIP is the socket peer, or the forwarded client when the peer is a trusted proxy.
// The result is copied out of the request buffer and safe to keep.
func ClientIP(ctx *fiber.Ctx) string {
	return utils.CopyString(ctx.IP())
}
