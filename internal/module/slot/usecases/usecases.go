package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/internal/module/slot/models/entity"
	"callbooking-service/internal/module/slot/models/request"
	"callbooking-service/internal/module/slot/models/response"
	"callbooking-service/internal/module/slot/repositories"
	"callbooking-service/internal/pkg/errors"
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	CreateSlot(ctx context.Context, influencerID uuid.UUID, payload *request.UpsertSlot) (response.Slot, error)
	UpdateSlot(ctx context.Context, slotID, influencerID uuid.UUID, payload *request.UpsertSlot) (response.Slot, error)
	CancelSlot(ctx context.Context, slotID, influencerID uuid.UUID) error
	ListAvailableSlots(ctx context.Context) ([]response.Slot, error)
	ListInfluencerSlots(ctx context.Context, influencerID uuid.UUID) ([]response.Slot, error)
	ExpireSlot(ctx context.Context, payload *request.SlotExpiration) error
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) CreateSlot(ctx context.Context, influencerID uuid.UUID, payload *request.UpsertSlot) (response.Slot, error) {
	influencer, err := u.repo.FindInfluencerByID(ctx, influencerID)
	if err != nil {
		return response.Slot{}, err
	}
	if influencer.Role != "influencer" {
		return response.Slot{}, errors.ForbiddenError("only influencers can create slots")
	}
	if influencer.VerificationStatus.String != "approved" {
		return response.Slot{}, errors.ForbiddenError("influencer is not verified")
	}

	start, end, err := validateInterval(payload)
	if err != nil {
		return response.Slot{}, err
	}

	slot := entity.Slot{
		ID:              uuid.New(),
		InfluencerID:    influencerID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: payload.Duration,
		Price:           payload.Price,
		Status:          entity.SlotStatusAvailable,
	}

	if err := u.repo.CreateSlot(ctx, &slot); err != nil {
		return response.Slot{}, err
	}

	// expiry is housekeeping; the slot is already live
	expiration := request.SlotExpiration{SlotID: slot.ID.String()}
	taskPayload, _ := json.Marshal(expiration)
	if _, err := u.repo.SetSlotExpiryTask(ctx, slot.EndTime, taskPayload); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error scheduling slot expiry: %v", err))
	}

	return toResponse(slot), nil
}

func (u *usecase) UpdateSlot(ctx context.Context, slotID, influencerID uuid.UUID, payload *request.UpsertSlot) (response.Slot, error) {
	slot, err := u.repo.FindSlotByID(ctx, slotID)
	if err != nil {
		return response.Slot{}, err
	}
	if slot.InfluencerID != influencerID {
		return response.Slot{}, errors.ForbiddenError("no access to edit this slot")
	}
	if slot.Status != entity.SlotStatusAvailable {
		return response.Slot{}, errors.Conflict("slot cannot be updated because it is already booked or cancelled")
	}

	start, end, err := validateInterval(payload)
	if err != nil {
		return response.Slot{}, err
	}

	slot.StartTime = start
	slot.EndTime = end
	slot.DurationMinutes = payload.Duration
	slot.Price = payload.Price

	if err := u.repo.UpdateSlot(ctx, &slot); err != nil {
		return response.Slot{}, err
	}

	// the task enqueued at the old end time is now stale; schedule a fresh
	// one at the new end time (the expiry update guards on end_time, so the
	// stale task is a no-op when it fires)
	expiration := request.SlotExpiration{SlotID: slot.ID.String()}
	taskPayload, _ := json.Marshal(expiration)
	if _, err := u.repo.SetSlotExpiryTask(ctx, slot.EndTime, taskPayload); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error scheduling slot expiry: %v", err))
	}

	return toResponse(slot), nil
}

func (u *usecase) CancelSlot(ctx context.Context, slotID, influencerID uuid.UUID) error {
	slot, err := u.repo.FindSlotByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.InfluencerID != influencerID {
		return errors.ForbiddenError("no access to cancel this slot")
	}

	return u.repo.CancelSlot(ctx, slotID, influencerID)
}

func (u *usecase) ListAvailableSlots(ctx context.Context) ([]response.Slot, error) {
	slots, err := u.repo.FindAvailableSlots(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(slots), nil
}

func (u *usecase) ListInfluencerSlots(ctx context.Context, influencerID uuid.UUID) ([]response.Slot, error) {
	slots, err := u.repo.FindSlotsByInfluencerID(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	return toResponses(slots), nil
}

func (u *usecase) ExpireSlot(ctx context.Context, payload *request.SlotExpiration) error {
	slotID, err := uuid.Parse(payload.SlotID)
	if err != nil {
		return errors.BadRequest("invalid slot id")
	}
	return u.repo.ExpireSlot(ctx, slotID)
}

func validateInterval(payload *request.UpsertSlot) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, payload.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("invalid start time format")
	}
	end, err := time.Parse(time.RFC3339, payload.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("invalid end time format")
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, errors.BadRequest("start time must be before end time")
	}
	if !start.After(time.Now()) {
		return time.Time{}, time.Time{}, errors.BadRequest("slot must be scheduled in the future")
	}

	allowed := false
	for _, d := range entity.AllowedDurations {
		if payload.Duration == d {
			allowed = true
			break
		}
	}
	if !allowed {
		return time.Time{}, time.Time{}, errors.BadRequest("slot duration must be one of: 15, 30, 45, 60, 90 minutes")
	}
	if end.Sub(start) != time.Duration(payload.Duration)*time.Minute {
		return time.Time{}, time.Time{}, errors.BadRequest("duration does not match the slot interval")
	}

	return start, end, nil
}

func toResponse(slot entity.Slot) response.Slot {
	return response.Slot{
		ID:           slot.ID.String(),
		InfluencerID: slot.InfluencerID.String(),
		StartTime:    slot.StartTime.Format(time.RFC3339),
		EndTime:      slot.EndTime.Format(time.RFC3339),
		Duration:     slot.DurationMinutes,
		Price:        slot.Price,
		Status:       slot.Status,
	}
}

func toResponses(slots []entity.Slot) []response.Slot {
	resp := make([]response.Slot, 0, len(slots))
	for _, slot := range slots {
		resp = append(resp, toResponse(slot))
	}
	return resp
}
