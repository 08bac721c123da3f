package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

type Booking struct {
	ID              uuid.UUID    `db:"id"`
	BookingNumber   uuid.UUID    `db:"booking_number"`
	SlotID          uuid.UUID    `db:"slot_id"`
	UserID          uuid.UUID    `db:"user_id"`
	InfluencerID    uuid.UUID    `db:"influencer_id"`
	PaymentStatus   string       `db:"payment_status"`
	PaymentIntentID string       `db:"payment_intent_id"`
	AmountPaid      int64        `db:"amount_paid"`      // slot price snapshot, cents
	CommissionTaken int64        `db:"commission_taken"` // platform cut snapshot, cents
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       sql.NullTime `db:"updated_at"`
}

// SlotDetail is the slot joined with its owner, read at booking time.
type SlotDetail struct {
	ID                   uuid.UUID      `db:"id"`
	InfluencerID         uuid.UUID      `db:"influencer_id"`
	StartTime            time.Time      `db:"start_time"`
	EndTime              time.Time      `db:"end_time"`
	Price                int64          `db:"price"`
	Status               string         `db:"status"`
	InfluencerName       sql.NullString `db:"influencer_name"`
	InfluencerEmail      string         `db:"influencer_email"`
	CommissionPercentage sql.NullInt64  `db:"commission_percentage"`
}

type Contact struct {
	Email string         `db:"email"`
	Name  sql.NullString `db:"name"`
}
