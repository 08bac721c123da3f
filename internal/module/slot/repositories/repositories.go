package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/internal/module/slot/models/entity"
	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/scheduler"
)

type repositories struct {
	db        *sqlx.DB
	log       *otelzap.Logger
	taskQueue *asynq.Client
}

type Repositories interface {
	// db
	CreateSlot(ctx context.Context, slot *entity.Slot) error
	UpdateSlot(ctx context.Context, slot *entity.Slot) error
	CancelSlot(ctx context.Context, slotID, influencerID uuid.UUID) error
	ExpireSlot(ctx context.Context, slotID uuid.UUID) error
	FindSlotByID(ctx context.Context, slotID uuid.UUID) (entity.Slot, error)
	FindAvailableSlots(ctx context.Context) ([]entity.Slot, error)
	FindSlotsByInfluencerID(ctx context.Context, influencerID uuid.UUID) ([]entity.Slot, error)
	FindInfluencerByID(ctx context.Context, influencerID uuid.UUID) (entity.Influencer, error)
	// scheduler
	SetSlotExpiryTask(ctx context.Context, processAt time.Time, payload []byte) (string, error)
}

func New(db *sqlx.DB, log *otelzap.Logger, taskQueue *asynq.Client) Repositories {
	return &repositories{
		db:        db,
		log:       log,
		taskQueue: taskQueue,
	}
}

// CreateSlot inserts a slot after verifying no active slot of the same
// influencer intersects the half-open interval. The advisory lock
// serializes the check-then-insert against concurrent calendar writes;
// row locks alone cannot block an insert that is not there yet.
func (r *repositories) CreateSlot(ctx context.Context, slot *entity.Slot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	if err := r.checkOverlap(ctx, tx, slot, uuid.Nil); err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO call_slots (id, influencer_id, start_time, end_time, duration_minutes, price, status, created_at)
		VALUES (:id, :influencer_id, :start_time, :end_time, :duration_minutes, :price, :status, now())
	`, slot)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error inserting slot")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// UpdateSlot replaces the slot fields in place, re-running the overlap
// check with the slot itself excluded. Only available slots may move.
func (r *repositories) UpdateSlot(ctx context.Context, slot *entity.Slot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	if err := r.checkOverlap(ctx, tx, slot, slot.ID); err != nil {
		tx.Rollback()
		return err
	}

	res, err := tx.NamedExecContext(ctx, `
		UPDATE call_slots
		SET start_time = :start_time, end_time = :end_time, duration_minutes = :duration_minutes, price = :price, updated_at = now()
		WHERE id = :id AND influencer_id = :influencer_id AND status = 'available'
	`, slot)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error updating slot")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error updating slot")
	}
	if rows == 0 {
		tx.Rollback()
		return errors.Conflict("slot can no longer be updated")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

func (r *repositories) checkOverlap(ctx context.Context, tx *sqlx.Tx, slot *entity.Slot, excludeID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, slot.InfluencerID.String()); err != nil {
		return errors.InternalServerError("error acquiring calendar lock")
	}

	var count int
	err := tx.GetContext(ctx, &count, `
		SELECT COUNT(1) FROM call_slots
		WHERE influencer_id = $1
		  AND status IN ('available', 'booked')
		  AND start_time < $2
		  AND end_time > $3
		  AND id <> $4
	`, slot.InfluencerID, slot.EndTime, slot.StartTime, excludeID)
	if err != nil {
		return errors.InternalServerError("error checking slot overlap")
	}
	if count > 0 {
		return errors.Conflict("slot overlaps with an existing slot")
	}

	return nil
}

// CancelSlot is a conditional transition; a slot that is booked, cancelled
// or expired stays untouched and the caller gets a conflict.
func (r *repositories) CancelSlot(ctx context.Context, slotID, influencerID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE call_slots SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND influencer_id = $2 AND status = 'available'
	`, slotID, influencerID)
	if err != nil {
		return errors.InternalServerError("error cancelling slot")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error cancelling slot")
	}
	if rows == 0 {
		return errors.Conflict("slot cannot be cancelled because it is already booked or cancelled")
	}

	return nil
}

// ExpireSlot is invoked by the scheduler once the slot's end time passed.
// Booked and cancelled slots are left alone. The end_time guard keeps a
// task enqueued before a reschedule from expiring the moved slot early.
func (r *repositories) ExpireSlot(ctx context.Context, slotID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE call_slots SET status = 'expired', updated_at = now()
		WHERE id = $1 AND status = 'available' AND end_time <= now()
	`, slotID)
	if err != nil {
		return errors.InternalServerError("error expiring slot")
	}
	return nil
}

func (r *repositories) FindSlotByID(ctx context.Context, slotID uuid.UUID) (entity.Slot, error) {
	var slot entity.Slot
	err := r.db.GetContext(ctx, &slot, `SELECT * FROM call_slots WHERE id = $1`, slotID)
	if err == sql.ErrNoRows {
		return entity.Slot{}, errors.NotFound("slot not found")
	}
	if err != nil {
		return entity.Slot{}, errors.InternalServerError("error find slot by id")
	}
	return slot, nil
}

func (r *repositories) FindAvailableSlots(ctx context.Context) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := r.db.SelectContext(ctx, &slots, `
		SELECT * FROM call_slots
		WHERE status = 'available' AND start_time > now()
		ORDER BY start_time ASC
	`)
	if err != nil {
		return nil, errors.InternalServerError("error find available slots")
	}
	return slots, nil
}

func (r *repositories) FindSlotsByInfluencerID(ctx context.Context, influencerID uuid.UUID) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := r.db.SelectContext(ctx, &slots, `
		SELECT * FROM call_slots WHERE influencer_id = $1 ORDER BY start_time ASC
	`, influencerID)
	if err != nil {
		return nil, errors.InternalServerError("error find slots by influencer id")
	}
	return slots, nil
}

func (r *repositories) FindInfluencerByID(ctx context.Context, influencerID uuid.UUID) (entity.Influencer, error) {
	var influencer entity.Influencer
	err := r.db.GetContext(ctx, &influencer, `
		SELECT id, name, email, role, verification_status, commission_percentage
		FROM users WHERE id = $1
	`, influencerID)
	if err == sql.ErrNoRows {
		return entity.Influencer{}, errors.NotFound("influencer not found")
	}
	if err != nil {
		return entity.Influencer{}, errors.InternalServerError("error find influencer by id")
	}
	return influencer, nil
}

// SetSlotExpiryTask enqueues the expiry task to run at processAt.
func (r *repositories) SetSlotExpiryTask(ctx context.Context, processAt time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeExpireSlot, payload)
	info, err := r.taskQueue.EnqueueContext(ctx, task, asynq.ProcessAt(processAt))
	if err != nil {
		return "", errors.InternalServerError(fmt.Sprintf("error enqueue slot expiry task: %v", err))
	}
	return info.ID, nil
}
