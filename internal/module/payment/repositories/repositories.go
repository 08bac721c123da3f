package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	bookingentity "callbooking-service/internal/module/booking/models/entity"
	"callbooking-service/internal/module/payment/models/entity"
	"callbooking-service/internal/pkg/errors"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	RecordWebhookEvent(ctx context.Context, event *entity.WebhookEvent) (bool, error)
	MarkBookingPaid(ctx context.Context, paymentIntentID string) (bookingentity.Booking, bool, error)
	MarkBookingRefunded(ctx context.Context, paymentIntentID string) (bookingentity.Booking, bool, error)
	FindBookingByPaymentIntentID(ctx context.Context, paymentIntentID string) (bookingentity.Booking, error)
	FindUserEmail(ctx context.Context, userID uuid.UUID) (string, error)
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// RecordWebhookEvent returns false when the provider event id was seen
// before; callers must then skip processing entirely.
func (r *repositories) RecordWebhookEvent(ctx context.Context, event *entity.WebhookEvent) (bool, error) {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO webhook_events (provider_event_id, event_type, payment_intent_id, payload, received_at)
		VALUES (:provider_event_id, :event_type, :payment_intent_id, :payload, now())
	`, event)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return false, nil
		}
		return false, errors.InternalServerError("error recording webhook event")
	}
	return true, nil
}

// MarkBookingPaid transitions pending to paid. A booking that is already
// paid or refunded is left untouched and reported as not updated, which
// makes duplicate success events a no-op and keeps refunded terminal.
func (r *repositories) MarkBookingPaid(ctx context.Context, paymentIntentID string) (bookingentity.Booking, bool, error) {
	var booking bookingentity.Booking
	err := r.db.GetContext(ctx, &booking, `
		UPDATE bookings SET payment_status = 'paid', updated_at = now()
		WHERE payment_intent_id = $1 AND payment_status = 'pending'
		RETURNING *
	`, paymentIntentID)
	if err == sql.ErrNoRows {
		return bookingentity.Booking{}, false, nil
	}
	if err != nil {
		return bookingentity.Booking{}, false, errors.InternalServerError("error marking booking paid")
	}
	return booking, true, nil
}

// MarkBookingRefunded wins over any prior non-refunded state.
func (r *repositories) MarkBookingRefunded(ctx context.Context, paymentIntentID string) (bookingentity.Booking, bool, error) {
	var booking bookingentity.Booking
	err := r.db.GetContext(ctx, &booking, `
		UPDATE bookings SET payment_status = 'refunded', updated_at = now()
		WHERE payment_intent_id = $1 AND payment_status <> 'refunded'
		RETURNING *
	`, paymentIntentID)
	if err == sql.ErrNoRows {
		return bookingentity.Booking{}, false, nil
	}
	if err != nil {
		return bookingentity.Booking{}, false, errors.InternalServerError("error marking booking refunded")
	}
	return booking, true, nil
}

func (r *repositories) FindUserEmail(ctx context.Context, userID uuid.UUID) (string, error) {
	var email string
	err := r.db.GetContext(ctx, &email, `SELECT email FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return "", errors.NotFound("user not found")
	}
	if err != nil {
		return "", errors.InternalServerError("error find user email")
	}
	return email, nil
}

func (r *repositories) FindBookingByPaymentIntentID(ctx context.Context, paymentIntentID string) (bookingentity.Booking, error) {
	var booking bookingentity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT * FROM bookings WHERE payment_intent_id = $1`, paymentIntentID)
	if err == sql.ErrNoRows {
		return bookingentity.Booking{}, errors.NotFound("booking not found for payment intent")
	}
	if err != nil {
		return bookingentity.Booking{}, errors.InternalServerError("error find booking by payment intent id")
	}
	return booking, nil
}
