package router

import (
	bookingHandler "turf-booking-service/internal/module/booking/handler"
	memberHandler "turf-booking-service/internal/module/member/handler"
	paymentHandler "turf-booking-service/internal/module/payment/handler"
	"turf-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Booking *bookingHandler.BookingHandler
	Payment *paymentHandler.PaymentHandler
	Member  *memberHandler.MemberHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware, rateLimitPerMinute int) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	limit := m.RateLimit(rateLimitPerMinute)

	// public routes
	app.Get("/slots", h.Booking.ListSlots)

	auth := app.Group("/auth")
	auth.Post("/signup", limit, h.Member.Signup)
	auth.Post("/login", limit, h.Member.Login)
	auth.Post("/logout", m.IdentifySession, h.Member.Logout)

	// gateway callbacks arrive as browser form posts and sometimes as GET redirects
	payment := app.Group("/payment")
	payment.Post("/initiate", limit, m.ValidateSession, h.Payment.Initiate)
	payment.All("/success", h.Payment.Success)
	payment.All("/fail", h.Payment.Fail)
	payment.All("/cancel", h.Payment.Cancel)
	payment.Post("/ipn", h.Payment.Ipn)

	// member routes
	app.Get("/bookings/history", m.ValidateSession, h.Booking.BookingHistory)
	app.Get("/invoice", m.ValidateSession, h.Booking.Invoice)

	return app

}
