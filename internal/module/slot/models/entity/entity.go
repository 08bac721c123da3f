package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
	SlotStatusCancelled = "cancelled"
	SlotStatusExpired   = "expired"
	// Reserved by the schema, never produced by the scheduler.
	SlotStatusPending = "pending"
)

// AllowedDurations are the bookable call lengths in minutes.
var AllowedDurations = []int{15, 30, 45, 60, 90}

type Slot struct {
	ID              uuid.UUID    `db:"id"`
	InfluencerID    uuid.UUID    `db:"influencer_id"`
	StartTime       time.Time    `db:"start_time"`
	EndTime         time.Time    `db:"end_time"`
	DurationMinutes int          `db:"duration_minutes"`
	Price           int64        `db:"price"` // minor currency units
	Status          string       `db:"status"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       sql.NullTime `db:"updated_at"`
}

type Influencer struct {
	ID                   uuid.UUID     `db:"id"`
	Name                 sql.NullString `db:"name"`
	Email                string        `db:"email"`
	Role                 string        `db:"role"`
	VerificationStatus   sql.NullString `db:"verification_status"`
	CommissionPercentage sql.NullInt64 `db:"commission_percentage"`
}
