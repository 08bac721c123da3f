package handler

import (
	"callbooking-service/internal/module/user/models/request"
	"callbooking-service/internal/module/user/usecases"
	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type UserHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var req request.Register
	if err := ctx.BodyParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid request body"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Register(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "user registered")
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := ctx.BodyParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid request body"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Login(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "login successful")
}

func (h *UserHandler) GoogleRedirect(ctx *fiber.Ctx) error {
	state := uuid.NewString()
	return ctx.Redirect(h.Usecase.GoogleAuthURL(state), fiber.StatusTemporaryRedirect)
}

func (h *UserHandler) GoogleCallback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("missing authorization code"))
	}

	resp, err := h.Usecase.GoogleCallback(ctx.UserContext(), code)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "login successful")
}

func (h *UserHandler) SendSmsCode(ctx *fiber.Ctx) error {
	var req request.SendSmsCode
	if err := ctx.BodyParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid request body"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.SendSmsCode(ctx.UserContext(), &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "verification code sent")
}

func (h *UserHandler) VerifySmsCode(ctx *fiber.Ctx) error {
	var req request.VerifySmsCode
	if err := ctx.BodyParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid request body"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.VerifySmsCode(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "login successful")
}

func (h *UserHandler) GetProfile(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(uuid.UUID)

	resp, err := h.Usecase.GetProfile(ctx.UserContext(), userID)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "profile retrieved")
}

func (h *UserHandler) UpdateProfile(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(uuid.UUID)

	var req request.UpdateProfile
	if err := ctx.BodyParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid request body"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdateProfile(ctx.UserContext(), userID, &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "profile updated")
}

func (h *UserHandler) SubmitVerification(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(uuid.UUID)

	var req request.SubmitVerification
	if err := ctx.BodyParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid request body"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.SubmitVerification(ctx.UserContext(), userID, &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "verification submitted")
}
