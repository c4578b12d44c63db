package handler

import (
	"context"
	"fmt"

	"turf-booking-service/internal/module/payment/models/request"
	"turf-booking-service/internal/module/payment/usecases"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/helpers"
	"turf-booking-service/internal/pkg/scheduler"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const paymentStatusCookie = "payment_status"

type PaymentHandler struct {
	Log        *otelzap.Logger
	Validator  *validator.Validate
	Usecase    usecases.Usecase
	BaseURL    string
	Production bool
}

func (h *PaymentHandler) Initiate(ctx *fiber.Ctx) error {
	var req request.Initiate
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	memberID, _ := ctx.Locals("pma_id").(string)

	resp, err := h.Usecase.Initiate(ctx.UserContext(), memberID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error initiate payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "payment session created")
}

func (h *PaymentHandler) Success(ctx *fiber.Ctx) error {
	return h.callback(ctx, usecases.VariantSuccess)
}

func (h *PaymentHandler) Fail(ctx *fiber.Ctx) error {
	return h.callback(ctx, usecases.VariantFail)
}

func (h *PaymentHandler) Cancel(ctx *fiber.Ctx) error {
	return h.callback(ctx, usecases.VariantCancel)
}

// callback always ends in a redirect; the browser never sees an error body.
func (h *PaymentHandler) callback(ctx *fiber.Ctx, v usecases.Variant) error {
	cb, err := h.parseCallback(ctx)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error parse %s callback: %v", v.Name, err))
	}

	out, err := h.Usecase.HandleCallback(ctx.UserContext(), v, cb)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle %s callback %s: %v", v.Name, cb.TranID, err))
	}
	if out.Flag == "" {
		out = usecases.ErrorOutcome(cb.TranID)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     paymentStatusCookie,
		Value:    out.Flag,
		Path:     "/",
		MaxAge:   5,
		Secure:   h.Production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.Redirect(out.RedirectURL(h.BaseURL, v), fiber.StatusFound)
}

func (h *PaymentHandler) Ipn(ctx *fiber.Ctx) error {
	cb, err := h.parseCallback(ctx)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error parse ipn: %v", err))
	}

	ack, err := h.Usecase.HandleIpn(ctx.UserContext(), cb)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle ipn %s: %v", cb.TranID, err))
		// 5xx asks the gateway to retry the notification
		if errors.StatusCode(err) >= fiber.StatusInternalServerError {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ack)
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(ack)
}

// parseCallback reads the gateway fields from a JSON or form body and falls back to the
// tran_id query parameter the callback URLs carry.
func (h *PaymentHandler) parseCallback(ctx *fiber.Ctx) (*request.Callback, error) {
	cb := &request.Callback{}
	var err error
	if len(ctx.Body()) > 0 {
		err = ctx.BodyParser(cb)
	}
	if cb.TranID == "" {
		cb.TranID = ctx.Query("tran_id")
	}
	return cb, err
}

func (h *PaymentHandler) ReconcileTransaction(ctx context.Context, t *asynq.Task) error {
	var req scheduler.ReconcilePayload
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.Reconcile(ctx, req.TransactionID); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error reconcile transaction %s: %v", req.TransactionID, err))
		return err
	}

	return nil
}
