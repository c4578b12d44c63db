package http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SetupHttpEngine reads X-Forwarded-For only from trustedProxies.
func SetupHttpEngine(trustedProxies []string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:                 "turf-booking-service",
		JSONEncoder:             json.Marshal,
		JSONDecoder:             json.Unmarshal,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          trustedProxies,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return ctx.Status(fe.Code).JSON(helpers.Response{Success: false, Message: fe.Message})
			}
			return ctx.Status(errors.StatusCode(err)).JSON(helpers.Response{Success: false, Message: errors.Message(err)})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())

	return app
}

// StartHttpServer blocks until SIGINT/SIGTERM and then drains in-flight requests.
func StartHttpServer(app *fiber.App, port string, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(fmt.Sprintf(":%s", port))
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sig:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}
