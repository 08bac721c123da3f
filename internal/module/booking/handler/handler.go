package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/internal/module/booking/models/request"
	"callbooking-service/internal/module/booking/usecases"
	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/helpers"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) BookSlot(ctx *fiber.Ctx) error {
	var req request.BookSlot
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(uuid.UUID)
	emailUser := ctx.Locals("email_user").(string)

	resp, err := h.Usecase.BookSlot(ctx.UserContext(), &req, userID, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error book slot: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "call booked")
}

func (h *BookingHandler) RefundBooking(ctx *fiber.Ctx) error {
	bookingID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid booking id"))
	}

	resp, err := h.Usecase.RefundBooking(ctx.UserContext(), bookingID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error refund booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "payment refunded")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(uuid.UUID)

	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) CreatePaymentIntent(ctx *fiber.Ctx) error {
	var req request.CreatePaymentIntent
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreatePaymentIntent(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create payment intent: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "payment intent created")
}
