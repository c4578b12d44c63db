package handler_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"turf-booking-service/internal/module/payment/handler"
	"turf-booking-service/internal/module/payment/mocks"
	"turf-booking-service/internal/module/payment/models/request"
	"turf-booking-service/internal/module/payment/models/response"
	"turf-booking-service/internal/module/payment/usecases"
	customErrors "turf-booking-service/internal/pkg/errors"
	log_internal "turf-booking-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

const (
	baseURL = "https://pma.test"
	tranID  = "TXNPMA123456ABCD"
)

var (
	h   *handler.PaymentHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.PaymentHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
		BaseURL:   baseURL,
	}
	app = fiber.New()
	app.Post("/payment/initiate", func(c *fiber.Ctx) error {
		if id := c.Get("X-Test-Member"); id != "" {
			c.Locals("pma_id", id)
		}
		return c.Next()
	}, h.Initiate)
	app.All("/payment/success", h.Success)
	app.All("/payment/fail", h.Fail)
	app.All("/payment/cancel", h.Cancel)
	app.Post("/payment/ipn", h.Ipn)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestInitiate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		body := `{"amount":1000,"bookingData":{"selectedDate":"2026-10-20","selectedSlots":[{"slotId":"SLOT01PMA"}]}}`
		ucm.On("Initiate", mock.Anything, "M01PMA", mock.MatchedBy(func(r *request.Initiate) bool {
			return r.Amount == 1000 && r.BookingData.SelectedSlots[0].SlotID == "SLOT01PMA"
		})).Return(response.Initiate{PaymentURL: "https://sandbox.test/pay", TransactionID: tranID, BookingID: "BOOKED10PMA"}, nil)

		req := httptest.NewRequest("POST", "/payment/initiate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Test-Member", "M01PMA")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `"paymentUrl":"https://sandbox.test/pay"`)
		assert.Contains(t, string(raw), `"bookingId":"BOOKED10PMA"`)
	})

	t.Run("error envelope", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("Initiate", mock.Anything, "", mock.Anything).Return(response.Initiate{}, customErrors.UnauthorizedError("member session required"))

		req := httptest.NewRequest("POST", "/payment/initiate", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var env struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.False(t, env.Success)
		assert.Equal(t, "member session required", env.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		setup()
		defer teardown()

		req := httptest.NewRequest("POST", "/payment/initiate", strings.NewReader(`{"amount":`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		ucm.AssertNotCalled(t, "Initiate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCallbacks(t *testing.T) {
	t.Run("success redirect with cookie", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("HandleCallback", mock.Anything, usecases.VariantSuccess, &request.Callback{TranID: tranID}).
			Return(usecases.Outcome{State: usecases.StateReconciled, Flag: usecases.FlagSuccess, TransactionID: tranID, BookingID: "BOOKED10PMA"}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/payment/success?tran_id="+tranID, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, baseURL+"/member_dashboard?booking_id=BOOKED10PMA&payment=success", resp.Header.Get("Location"))

		cookie := resp.Header.Get("Set-Cookie")
		assert.Contains(t, cookie, "payment_status=success")
		assert.Contains(t, cookie, "max-age=5")
	})

	t.Run("form post from gateway", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("HandleCallback", mock.Anything, usecases.VariantCancel, mock.MatchedBy(func(cb *request.Callback) bool {
			return cb.TranID == tranID && cb.Status == "CANCELLED" && cb.ValueA == "BOOKED10PMA"
		})).Return(usecases.Outcome{State: usecases.StateCancelled, Flag: usecases.FlagCancelled, TransactionID: tranID}, nil)

		req := httptest.NewRequest("POST", "/payment/cancel", strings.NewReader("tran_id="+tranID+"&status=CANCELLED&value_a=BOOKED10PMA"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, baseURL+"/member_dashboard/bookings?payment=cancelled", resp.Header.Get("Location"))
	})

	t.Run("processing error still redirects", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("HandleCallback", mock.Anything, usecases.VariantFail, mock.Anything).
			Return(usecases.Outcome{}, customErrors.InternalServerError("error query transaction"))

		resp, err := app.Test(httptest.NewRequest("GET", "/payment/fail?tran_id="+tranID, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, baseURL+"/member_dashboard/bookings?payment=error", resp.Header.Get("Location"))
		assert.Contains(t, resp.Header.Get("Set-Cookie"), "payment_status=error")
	})
}

func TestIpn(t *testing.T) {
	testCases := []struct {
		name       string
		ack        response.IpnAck
		err        error
		wantStatus int
	}{
		{name: "received", ack: response.IpnAck{Status: response.IpnReceived}, wantStatus: fiber.StatusOK},
		{name: "already processed", ack: response.IpnAck{Status: response.IpnAlreadyProcessed}, wantStatus: fiber.StatusOK},
		{
			name:       "transient failure",
			ack:        response.IpnAck{Status: response.IpnError, Error: "gateway timeout"},
			err:        customErrors.GatewayTimeout("gateway timeout", nil),
			wantStatus: fiber.StatusInternalServerError,
		},
		{
			name:       "bad request is acknowledged",
			ack:        response.IpnAck{Status: response.IpnError, Error: "invalid tran_id"},
			err:        customErrors.BadRequest("invalid tran_id"),
			wantStatus: fiber.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer teardown()

			ucm.On("HandleIpn", mock.Anything, mock.MatchedBy(func(cb *request.Callback) bool {
				return cb.TranID == tranID && cb.Status == "VALID"
			})).Return(tc.ack, tc.err)

			req := httptest.NewRequest("POST", "/payment/ipn", strings.NewReader("tran_id="+tranID+"&status=VALID"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var ack response.IpnAck
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
			assert.Equal(t, tc.ack.Status, ack.Status)
		})
	}
}

func TestInitiateWithRequestCtx(t *testing.T) {
	setup()
	defer teardown()

	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(ctx)
	ctx.Request().SetRequestURI("/payment/initiate")
	ctx.Request().Header.SetContentType("application/json")
	ctx.Request().Header.SetMethod("POST")
	ctx.Request().SetBody([]byte(`{"amount":0,"bookingData":{"selectedDate":"2026-10-20","selectedSlots":[{"slotId":"SLOT02PMA"}]}}`))
	ctx.Locals("pma_id", "M02PMA")

	ucm.On("Initiate", mock.Anything, "M02PMA", mock.Anything).Return(response.Initiate{TransactionID: tranID}, nil)

	err := h.Initiate(ctx)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
}

func TestReconcileTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("Reconcile", ctx, tranID).Return(nil)

		err := h.ReconcileTransaction(ctx, asynq.NewTask("reconcile_transaction", []byte(`{"transaction_id":"`+tranID+`"}`)))
		assert.NoError(t, err)
	})

	t.Run("invalid payload is not retried", func(t *testing.T) {
		setup()
		defer teardown()

		err := h.ReconcileTransaction(ctx, asynq.NewTask("reconcile_transaction", []byte(`{}`)))
		assert.ErrorIs(t, err, asynq.SkipRetry)
		ucm.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
	})

	t.Run("usecase error is retried", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("Reconcile", ctx, tranID).Return(customErrors.GatewayTimeout("gateway timeout", nil))

		err := h.ReconcileTransaction(ctx, asynq.NewTask("reconcile_transaction", []byte(`{"transaction_id":"`+tranID+`"}`)))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})
}
