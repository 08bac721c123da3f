package handler

import (
	"fmt"

	"callbooking-service/internal/module/admin/models/request"
	"callbooking-service/internal/module/admin/usecases"
	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type AdminHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *AdminHandler) ListBookings(ctx *fiber.Ctx) error {
	var req request.Pagination
	if err := ctx.QueryParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid query parameters"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.ListBookings(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "bookings retrieved")
}

func (h *AdminHandler) SetCommission(ctx *fiber.Ctx) error {
	influencerID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid influencer id"))
	}

	var req request.SetCommission
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.SetCommission(ctx.UserContext(), influencerID, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "commission updated")
}

func (h *AdminHandler) ListPendingVerifications(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListPendingVerifications(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "pending verifications retrieved")
}

func (h *AdminHandler) ReviewVerification(ctx *fiber.Ctx) error {
	influencerID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid influencer id"))
	}

	var req request.ReviewVerification
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.ReviewVerification(ctx.UserContext(), influencerID, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "verification reviewed")
}

func (h *AdminHandler) AnalyticsSummary(ctx *fiber.Ctx) error {
	var req request.AnalyticsQuery
	if err := ctx.QueryParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid query parameters"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.AnalyticsSummary(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "analytics summary retrieved")
}
