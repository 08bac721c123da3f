package response

import (
	"time"

	"github.com/google/uuid"
)

type BookingOverview struct {
	ID              uuid.UUID `json:"id"`
	BookingNumber   string    `json:"booking_number"`
	UserEmail       string    `json:"user_email"`
	InfluencerEmail string    `json:"influencer_email"`
	PaymentStatus   string    `json:"payment_status"`
	AmountPaid      int64     `json:"amount_paid"`
	CommissionTaken int64     `json:"commission_taken"`
	StartTime       time.Time `json:"start_time"`
	CreatedAt       time.Time `json:"created_at"`
}

type VerificationRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	Documents   []string  `json:"documents"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type AnalyticsSummary struct {
	TotalBookings       int64                   `json:"total_bookings"`
	PaidBookings        int64                   `json:"paid_bookings"`
	RefundedBookings    int64                   `json:"refunded_bookings"`
	GrossRevenue        int64                   `json:"gross_revenue"`
	CommissionEarned    int64                   `json:"commission_earned"`
	RefundedAmount      int64                   `json:"refunded_amount"`
	TotalUsers          int64                   `json:"total_users"`
	TotalInfluencers    int64                   `json:"total_influencers"`
	VerifiedInfluencers int64                   `json:"verified_influencers"`
	Influencers         []InfluencerPerformance `json:"influencers"`
}

type InfluencerPerformance struct {
	InfluencerID uuid.UUID `json:"influencer_id"`
	Email        string    `json:"email"`
	CallCount    int64     `json:"call_count"`
	Revenue      int64     `json:"revenue"`
	Commission   int64     `json:"commission"`
	AvgCallCost  int64     `json:"avg_call_cost"`
}
