package handler

import (
	stdErrors "errors"
	"fmt"
	"strings"
	"time"

	"turf-booking-service/internal/module/member/models/request"
	"turf-booking-service/internal/module/member/usecases"
	"turf-booking-service/internal/pkg/errors"
	"turf-booking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type MemberHandler struct {
	Log        *otelzap.Logger
	Validator  *validator.Validate
	Usecase    usecases.Usecase
	CookieName string
	Production bool
}

func (h *MemberHandler) Signup(ctx *fiber.Ctx) error {
	var req request.Signup
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(validationMessage(err)))
	}

	resp, err := h.Usecase.Signup(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error signup: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Status(fiber.StatusCreated)
	return ctx.JSON(helpers.Response{Success: true, Message: "registration successful", Data: resp})
}

func (h *MemberHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(validationMessage(err)))
	}

	resp, err := h.Usecase.Login(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error login from %s: %v", helpers.ClientIP(ctx), err))
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     h.CookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.Production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return helpers.RespSuccess(ctx, h.Log, resp, "login successful")
}

func (h *MemberHandler) Logout(ctx *fiber.Ctx) error {
	pmaID, _ := ctx.Locals("pma_id").(string)

	if err := h.Usecase.Logout(ctx.UserContext(), pmaID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error logout: %v", err))
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.Production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return helpers.RespSuccess(ctx, h.Log, nil, "logout successful")
}

// validationMessage lists missing fields first, then the first other failure.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) {
		return "invalid request"
	}
	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return "missing required fields: " + strings.Join(missing, ", ")
	}
	return fmt.Sprintf("invalid %s", verrs[0].Field())
}
