package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-redsync/redsync/v4"
	redsyncgoredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/internal/module/booking/models/entity"
	"callbooking-service/internal/pkg/errors"
)

// UnlockFunc releases a previously acquired slot lock.
type UnlockFunc func()

type repositories struct {
	db     *sqlx.DB
	log    *otelzap.Logger
	locker *redsync.Redsync
}

type Repositories interface {
	// redis
	LockSlot(ctx context.Context, slotID uuid.UUID) (UnlockFunc, error)
	// db
	CreateBooking(ctx context.Context, booking *entity.Booking) error
	FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Booking, error)
	FindSlotDetail(ctx context.Context, slotID uuid.UUID) (entity.SlotDetail, error)
	FindUserContact(ctx context.Context, userID uuid.UUID) (entity.Contact, error)
	MarkBookingRefunded(ctx context.Context, bookingID uuid.UUID) error
}

func New(db *sqlx.DB, log *otelzap.Logger, redisClient *goredis.Client) Repositories {
	var locker *redsync.Redsync
	if redisClient != nil {
		locker = redsync.New(redsyncgoredis.NewPool(redisClient))
	}
	return &repositories{
		db:     db,
		log:    log,
		locker: locker,
	}
}

// LockSlot serializes booking attempts on one slot across instances. The
// database conditional update stays authoritative; this only narrows the
// race window and keeps losers from hitting the constraint.
func (r *repositories) LockSlot(ctx context.Context, slotID uuid.UUID) (UnlockFunc, error) {
	if r.locker == nil {
		return func() {}, nil
	}

	mutex := r.locker.NewMutex(
		"booking:slot:"+slotID.String(),
		redsync.WithExpiry(8*time.Second),
		redsync.WithTries(3),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.Conflict("slot is being booked by another request")
	}

	return func() {
		mutex.Unlock()
	}, nil
}

// CreateBooking flips the slot to booked and inserts the booking in one
// transaction. A slot that is not available means someone else won.
func (r *repositories) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE call_slots SET status = 'booked', updated_at = now()
		WHERE id = $1 AND status = 'available'
	`, booking.SlotID)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error reserving slot")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error reserving slot")
	}
	if rows == 0 {
		var status string
		err = tx.GetContext(ctx, &status, `SELECT status FROM call_slots WHERE id = $1`, booking.SlotID)
		tx.Rollback()
		if err == sql.ErrNoRows {
			return errors.NotFound("slot not found")
		}
		return errors.Conflict("slot already booked")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (id, booking_number, slot_id, user_id, influencer_id, payment_status, payment_intent_id, amount_paid, commission_taken, created_at)
		VALUES (:id, :booking_number, :slot_id, :user_id, :influencer_id, :payment_status, :payment_intent_id, :amount_paid, :commission_taken, now())
	`, booking)
	if err != nil {
		tx.Rollback()
		// unique index on active bookings per slot is the backstop
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return errors.Conflict("slot already booked")
		}
		return errors.InternalServerError("error inserting booking")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

func (r *repositories) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT * FROM bookings WHERE id = $1`, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

func (r *repositories) FindBookingsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

func (r *repositories) FindSlotDetail(ctx context.Context, slotID uuid.UUID) (entity.SlotDetail, error) {
	var detail entity.SlotDetail
	err := r.db.GetContext(ctx, &detail, `
		SELECT s.id, s.influencer_id, s.start_time, s.end_time, s.price, s.status,
		       u.name AS influencer_name, u.email AS influencer_email, u.commission_percentage
		FROM call_slots s
		JOIN users u ON u.id = s.influencer_id
		WHERE s.id = $1
	`, slotID)
	if err == sql.ErrNoRows {
		return entity.SlotDetail{}, errors.NotFound("slot not found")
	}
	if err != nil {
		return entity.SlotDetail{}, errors.InternalServerError("error find slot detail")
	}
	return detail, nil
}

func (r *repositories) FindUserContact(ctx context.Context, userID uuid.UUID) (entity.Contact, error) {
	var contact entity.Contact
	err := r.db.GetContext(ctx, &contact, `SELECT email, name FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return entity.Contact{}, errors.NotFound("user not found")
	}
	if err != nil {
		return entity.Contact{}, errors.InternalServerError("error find user contact")
	}
	return contact, nil
}

// MarkBookingRefunded is deliberately unconditional: refund is idempotent
// and always lands on refunded.
func (r *repositories) MarkBookingRefunded(ctx context.Context, bookingID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET payment_status = 'refunded', updated_at = now()
		WHERE id = $1
	`, bookingID)
	if err != nil {
		return errors.InternalServerError("error refunding booking")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error refunding booking")
	}
	if rows == 0 {
		return errors.NotFound("booking not found")
	}

	return nil
}
