package handler

import (
	"fmt"

	"turf-booking-service/internal/module/booking/usecases"
	"turf-booking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

func (h *BookingHandler) ListSlots(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListSlots(ctx.UserContext(), ctx.Query("date"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list slots: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	return helpers.RespSuccess(ctx, h.Log, resp, "success list slots")
}

func (h *BookingHandler) BookingHistory(ctx *fiber.Ctx) error {
	pmaID, _ := ctx.Locals("pma_id").(string)

	resp, err := h.Usecase.BookingHistory(ctx.UserContext(), pmaID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show booking history: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booking history")
}

func (h *BookingHandler) Invoice(ctx *fiber.Ctx) error {
	pmaID, _ := ctx.Locals("pma_id").(string)

	resp, err := h.Usecase.Invoice(ctx.UserContext(), pmaID, ctx.Query("booking_id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error generate invoice: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success generate invoice")
}
