package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type VerificationRequest struct {
	UserID      uuid.UUID      `db:"user_id"`
	Email       string         `db:"email"`
	Name        sql.NullString `db:"name"`
	Documents   pq.StringArray `db:"verification_documents"`
	SubmittedAt sql.NullTime   `db:"updated_at"`
}

type BookingOverview struct {
	ID              uuid.UUID `db:"id"`
	BookingNumber   string    `db:"booking_number"`
	UserEmail       string    `db:"user_email"`
	InfluencerEmail string    `db:"influencer_email"`
	PaymentStatus   string    `db:"payment_status"`
	AmountPaid      int64     `db:"amount_paid"`
	CommissionTaken int64     `db:"commission_taken"`
	StartTime       time.Time `db:"start_time"`
	CreatedAt       time.Time `db:"created_at"`
}

type AnalyticsSummary struct {
	TotalBookings    int64 `db:"total_bookings"`
	PaidBookings     int64 `db:"paid_bookings"`
	RefundedBookings int64 `db:"refunded_bookings"`
	GrossRevenue     int64 `db:"gross_revenue"`
	CommissionEarned int64 `db:"commission_earned"`
	RefundedAmount   int64 `db:"refunded_amount"`
}

type UserCounts struct {
	TotalUsers          int64 `db:"total_users"`
	TotalInfluencers    int64 `db:"total_influencers"`
	VerifiedInfluencers int64 `db:"verified_influencers"`
}

type InfluencerPerformance struct {
	InfluencerID uuid.UUID `db:"influencer_id"`
	Email        string    `db:"email"`
	CallCount    int64     `db:"call_count"`
	Revenue      int64     `db:"revenue"`
	Commission   int64     `db:"commission"`
}
