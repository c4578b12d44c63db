package handler_test

import (
	"net/http/httptest"
	"testing"

	"turf-booking-service/internal/module/booking/handler"
	"turf-booking-service/internal/module/booking/mocks"
	"turf-booking-service/internal/module/booking/models/response"
	"turf-booking-service/internal/pkg/errors"
	log_internal "turf-booking-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

var (
	h   *handler.BookingHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.BookingHandler{
		Log:     log_internal.Setup(),
		Usecase: ucm,
	}
	app = fiber.New()
	app.Get("/slots", h.ListSlots)
	app.Get("/invoice", func(c *fiber.Ctx) error {
		c.Locals("pma_id", c.Get("X-Test-Member"))
		return c.Next()
	}, h.Invoice)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestListSlots(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("ListSlots", mock.Anything, "2026-10-20").Return([]response.Slot{{Serial: 1, SlotID: "SLOT01PMA", Booked: true}}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/slots?date=2026-10-20", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "no-store, max-age=0", resp.Header.Get("Cache-Control"))

		var env envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.True(t, env.Success)

		var slots []response.Slot
		require.NoError(t, json.Unmarshal(env.Data, &slots))
		require.Len(t, slots, 1)
		assert.True(t, slots[0].Booked)
	})

	t.Run("missing date", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("ListSlots", mock.Anything, "").Return(nil, errors.BadRequest("date parameter is required"))

		resp, err := app.Test(httptest.NewRequest("GET", "/slots", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestBookingHistory(t *testing.T) {
	setup()
	defer teardown()

	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(ctx)
	ctx.Request().SetRequestURI("/bookings/history")
	ctx.Request().Header.SetMethod("GET")
	ctx.Locals("pma_id", "M01PMA")

	ucm.On("BookingHistory", mock.Anything, "M01PMA").Return([]response.BookingHistory{{BookingID: "BOOKED10PMA"}}, nil)

	err := h.BookingHistory(ctx)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	assert.Contains(t, string(ctx.Response().Body()), "BOOKED10PMA")
}

func TestInvoice(t *testing.T) {
	testCases := []struct {
		name       string
		member     string
		bookingID  string
		resp       response.Invoice
		err        error
		wantStatus int
	}{
		{name: "success", member: "M01PMA", bookingID: "BOOKED10PMA", resp: response.Invoice{InvoiceID: "INV10PMA"}, wantStatus: fiber.StatusOK},
		{name: "malformed", member: "M01PMA", bookingID: "X", err: errors.BadRequest("valid booking id is required"), wantStatus: fiber.StatusBadRequest},
		{name: "booking of another member", member: "M02PMA", bookingID: "BOOKED10PMA", err: errors.NotFound("booking not found"), wantStatus: fiber.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer teardown()

			ucm.On("Invoice", mock.Anything, tc.member, tc.bookingID).Return(tc.resp, tc.err)

			req := httptest.NewRequest("GET", "/invoice?booking_id="+tc.bookingID, nil)
			req.Header.Set("X-Test-Member", tc.member)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			ucm.AssertCalled(t, "Invoice", mock.Anything, tc.member, tc.bookingID)
		})
	}
}
