package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"callbooking-service/internal/module/slot/mocks"
	"callbooking-service/internal/module/slot/models/entity"
	"callbooking-service/internal/module/slot/models/request"
	"callbooking-service/internal/module/slot/usecases"
	"callbooking-service/internal/pkg/errors"
	logpkg "callbooking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, logpkg.Setup())
}

func teardown() {
	repoMock = nil
	uc = nil
}

func futureInterval(minutes int) (string, string) {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(time.Duration(minutes) * time.Minute)
	return start.Format(time.RFC3339), end.Format(time.RFC3339)
}

func approvedInfluencer(id uuid.UUID) entity.Influencer {
	return entity.Influencer{
		ID:                 id,
		Email:              "jane@example.com",
		Role:               "influencer",
		VerificationStatus: sql.NullString{String: "approved", Valid: true},
	}
}

func TestCreateSlot(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	influencerID := uuid.New()

	t.Run("creates an available slot and schedules expiry", func(t *testing.T) {
		start, end := futureInterval(30)
		payload := &request.UpsertSlot{
			StartTime: start,
			EndTime:   end,
			Price:     10000,
			Duration:  30,
		}

		repoMock.On("FindInfluencerByID", ctx, influencerID).Return(approvedInfluencer(influencerID), nil).Once()
		repoMock.On("CreateSlot", ctx, mock.AnythingOfType("*entity.Slot")).Return(nil).Once()
		repoMock.On("SetSlotExpiryTask", ctx, mock.AnythingOfType("time.Time"), mock.Anything).Return("task-1", nil).Once()

		resp, err := uc.CreateSlot(ctx, influencerID, payload)

		assert.NoError(t, err)
		assert.Equal(t, entity.SlotStatusAvailable, resp.Status)
		assert.Equal(t, 30, resp.Duration)
		repoMock.AssertExpectations(t)
	})

	t.Run("unverified influencer is rejected", func(t *testing.T) {
		start, end := futureInterval(30)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 10000, Duration: 30}

		pending := approvedInfluencer(influencerID)
		pending.VerificationStatus = sql.NullString{String: "pending", Valid: true}
		repoMock.On("FindInfluencerByID", ctx, influencerID).Return(pending, nil).Once()

		_, err := uc.CreateSlot(ctx, influencerID, payload)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 403, resp.Code)
	})

	t.Run("non influencer role is forbidden", func(t *testing.T) {
		start, end := futureInterval(30)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 10000, Duration: 30}

		plainUser := approvedInfluencer(influencerID)
		plainUser.Role = "user"
		repoMock.On("FindInfluencerByID", ctx, influencerID).Return(plainUser, nil).Once()

		_, err := uc.CreateSlot(ctx, influencerID, payload)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 403, resp.Code)
	})

	t.Run("duration must match the interval", func(t *testing.T) {
		start, end := futureInterval(45)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 10000, Duration: 30}

		repoMock.On("FindInfluencerByID", ctx, influencerID).Return(approvedInfluencer(influencerID), nil).Once()

		_, err := uc.CreateSlot(ctx, influencerID, payload)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 400, resp.Code)
		assert.Equal(t, "duration does not match the slot interval", resp.Message)
	})

	t.Run("duration outside the allowed set", func(t *testing.T) {
		start, end := futureInterval(20)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 10000, Duration: 20}

		repoMock.On("FindInfluencerByID", ctx, influencerID).Return(approvedInfluencer(influencerID), nil).Once()

		_, err := uc.CreateSlot(ctx, influencerID, payload)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 400, resp.Code)
	})

	t.Run("past slot is rejected", func(t *testing.T) {
		start := time.Now().Add(-2 * time.Hour).Format(time.RFC3339)
		end := time.Now().Add(-90 * time.Minute).Format(time.RFC3339)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 10000, Duration: 30}

		repoMock.On("FindInfluencerByID", ctx, influencerID).Return(approvedInfluencer(influencerID), nil).Once()

		_, err := uc.CreateSlot(ctx, influencerID, payload)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, "slot must be scheduled in the future", resp.Message)
	})

	t.Run("overlap conflict from the repository is surfaced", func(t *testing.T) {
		start, end := futureInterval(30)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 10000, Duration: 30}

		repoMock.On("FindInfluencerByID", ctx, influencerID).Return(approvedInfluencer(influencerID), nil).Once()
		repoMock.On("CreateSlot", ctx, mock.AnythingOfType("*entity.Slot")).
			Return(errors.Conflict("slot overlaps an existing slot")).Once()

		_, err := uc.CreateSlot(ctx, influencerID, payload)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 409, resp.Code)
	})
}

func TestUpdateSlot(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	influencerID := uuid.New()
	slotID := uuid.New()

	availableSlot := entity.Slot{
		ID:              slotID,
		InfluencerID:    influencerID,
		StartTime:       time.Now().Add(24 * time.Hour),
		EndTime:         time.Now().Add(24*time.Hour + 30*time.Minute),
		DurationMinutes: 30,
		Price:           10000,
		Status:          entity.SlotStatusAvailable,
	}

	t.Run("updates an available slot", func(t *testing.T) {
		start, end := futureInterval(60)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 20000, Duration: 60}

		repoMock.On("FindSlotByID", ctx, slotID).Return(availableSlot, nil).Once()
		repoMock.On("UpdateSlot", ctx, mock.AnythingOfType("*entity.Slot")).Return(nil).Once()
		repoMock.On("SetSlotExpiryTask", ctx, mock.AnythingOfType("time.Time"), mock.Anything).Return("task-2", nil).Once()

		resp, err := uc.UpdateSlot(ctx, slotID, influencerID, payload)

		assert.NoError(t, err)
		assert.Equal(t, 60, resp.Duration)
		assert.Equal(t, int64(20000), resp.Price)
	})

	t.Run("reschedule re-enqueues expiry at the new end time", func(t *testing.T) {
		start, end := futureInterval(30)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 10000, Duration: 30}
		newEnd, _ := time.Parse(time.RFC3339, end)

		repoMock.On("FindSlotByID", ctx, slotID).Return(availableSlot, nil).Once()
		repoMock.On("UpdateSlot", ctx, mock.AnythingOfType("*entity.Slot")).Return(nil).Once()
		repoMock.On("SetSlotExpiryTask", ctx, mock.MatchedBy(func(at time.Time) bool {
			return at.Equal(newEnd)
		}), mock.Anything).Return("task-3", nil).Once()

		_, err := uc.UpdateSlot(ctx, slotID, influencerID, payload)

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("another influencer cannot edit the slot", func(t *testing.T) {
		start, end := futureInterval(30)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 10000, Duration: 30}

		repoMock.On("FindSlotByID", ctx, slotID).Return(availableSlot, nil).Once()

		_, err := uc.UpdateSlot(ctx, slotID, uuid.New(), payload)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 403, resp.Code)
	})

	t.Run("booked slot cannot be updated", func(t *testing.T) {
		start, end := futureInterval(30)
		payload := &request.UpsertSlot{StartTime: start, EndTime: end, Price: 10000, Duration: 30}

		booked := availableSlot
		booked.Status = entity.SlotStatusBooked
		repoMock.On("FindSlotByID", ctx, slotID).Return(booked, nil).Once()

		_, err := uc.UpdateSlot(ctx, slotID, influencerID, payload)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 409, resp.Code)
	})
}

func TestCancelSlot(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	influencerID := uuid.New()
	slotID := uuid.New()

	slot := entity.Slot{
		ID:           slotID,
		InfluencerID: influencerID,
		Status:       entity.SlotStatusAvailable,
	}

	t.Run("owner cancels the slot", func(t *testing.T) {
		repoMock.On("FindSlotByID", ctx, slotID).Return(slot, nil).Once()
		repoMock.On("CancelSlot", ctx, slotID, influencerID).Return(nil).Once()

		err := uc.CancelSlot(ctx, slotID, influencerID)

		assert.NoError(t, err)
	})

	t.Run("non owner is forbidden", func(t *testing.T) {
		repoMock.On("FindSlotByID", ctx, slotID).Return(slot, nil).Once()

		err := uc.CancelSlot(ctx, slotID, uuid.New())

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 403, resp.Code)
	})
}

func TestExpireSlot(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("expires by slot id", func(t *testing.T) {
		slotID := uuid.New()
		repoMock.On("ExpireSlot", ctx, slotID).Return(nil).Once()

		err := uc.ExpireSlot(ctx, &request.SlotExpiration{SlotID: slotID.String()})

		assert.NoError(t, err)
	})

	t.Run("invalid id", func(t *testing.T) {
		err := uc.ExpireSlot(ctx, &request.SlotExpiration{SlotID: "nope"})

		assert.Error(t, err)
	})
}
