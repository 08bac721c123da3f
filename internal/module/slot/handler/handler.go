package handler

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/internal/module/slot/models/request"
	"callbooking-service/internal/module/slot/usecases"
	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/helpers"
)

type SlotHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *SlotHandler) CreateSlot(ctx *fiber.Ctx) error {
	var req request.UpsertSlot
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	influencerID := ctx.Locals("user_id").(uuid.UUID)

	resp, err := h.Usecase.CreateSlot(ctx.UserContext(), influencerID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create slot: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "slot created")
}

func (h *SlotHandler) UpdateSlot(ctx *fiber.Ctx) error {
	slotID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid slot id"))
	}

	var req request.UpsertSlot
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	influencerID := ctx.Locals("user_id").(uuid.UUID)

	resp, err := h.Usecase.UpdateSlot(ctx.UserContext(), slotID, influencerID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update slot: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "slot updated")
}

func (h *SlotHandler) CancelSlot(ctx *fiber.Ctx) error {
	slotID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid slot id"))
	}

	influencerID := ctx.Locals("user_id").(uuid.UUID)

	if err := h.Usecase.CancelSlot(ctx.UserContext(), slotID, influencerID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel slot: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "slot cancelled")
}

func (h *SlotHandler) ListAvailableSlots(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListAvailableSlots(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list available slots: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list available slots")
}

func (h *SlotHandler) ListMySlots(ctx *fiber.Ctx) error {
	influencerID := ctx.Locals("user_id").(uuid.UUID)

	resp, err := h.Usecase.ListInfluencerSlots(ctx.UserContext(), influencerID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list influencer slots: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list influencer slots")
}

// ExpireSlot is the asynq task handler registered for slot:expire.
func (h *SlotHandler) ExpireSlot(ctx context.Context, t *asynq.Task) error {
	var req request.SlotExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.ExpireSlot(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error expire slot: %v", err))
		return err
	}

	return nil
}
