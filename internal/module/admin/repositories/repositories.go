package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"callbooking-service/internal/module/admin/models/entity"
	userentity "callbooking-service/internal/module/user/models/entity"
	"callbooking-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Repositories interface {
	ListBookings(ctx context.Context, limit, offset int) ([]entity.BookingOverview, error)
	SetCommission(ctx context.Context, influencerID uuid.UUID, percentage int64) error
	ListPendingVerifications(ctx context.Context) ([]entity.VerificationRequest, error)
	SetVerificationStatus(ctx context.Context, userID uuid.UUID, status string) (userentity.User, error)
	AnalyticsSummary(ctx context.Context, from, to time.Time) (entity.AnalyticsSummary, error)
	CountUsers(ctx context.Context) (entity.UserCounts, error)
	InfluencerBreakdown(ctx context.Context, from, to time.Time) ([]entity.InfluencerPerformance, error)
}

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{db: db, log: log}
}

func (r *repositories) ListBookings(ctx context.Context, limit, offset int) ([]entity.BookingOverview, error) {
	query := `
		SELECT b.id, b.booking_number, u.email AS user_email, i.email AS influencer_email,
		       b.payment_status, b.amount_paid, b.commission_taken, s.start_time, b.created_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN users i ON i.id = b.influencer_id
		JOIN call_slots s ON s.id = b.slot_id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2`

	bookings := []entity.BookingOverview{}
	if err := r.db.SelectContext(ctx, &bookings, query, limit, offset); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to list bookings: %v", err))
		return nil, errors.InternalServerError("failed to list bookings")
	}

	return bookings, nil
}

func (r *repositories) SetCommission(ctx context.Context, influencerID uuid.UUID, percentage int64) error {
	query := `
		UPDATE users
		SET commission_percentage = $2, updated_at = now()
		WHERE id = $1 AND role = $3`

	result, err := r.db.ExecContext(ctx, query, influencerID, percentage, userentity.RoleInfluencer)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to set commission: %v", err))
		return errors.InternalServerError("failed to set commission")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to set commission: %v", err))
		return errors.InternalServerError("failed to set commission")
	}
	if rows == 0 {
		return errors.NotFound("influencer not found")
	}

	return nil
}

func (r *repositories) ListPendingVerifications(ctx context.Context) ([]entity.VerificationRequest, error) {
	query := `
		SELECT id AS user_id, email, name, verification_documents, updated_at
		FROM users
		WHERE role = $1 AND verification_status = $2
		ORDER BY updated_at ASC`

	requests := []entity.VerificationRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, userentity.RoleInfluencer, userentity.VerificationPending); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to list pending verifications: %v", err))
		return nil, errors.InternalServerError("failed to list pending verifications")
	}

	return requests, nil
}

func (r *repositories) SetVerificationStatus(ctx context.Context, userID uuid.UUID, status string) (userentity.User, error) {
	query := `
		UPDATE users
		SET verification_status = $2, updated_at = now()
		WHERE id = $1 AND role = $3 AND verification_status = $4
		RETURNING *`

	var user userentity.User
	err := r.db.GetContext(ctx, &user, query, userID, status, userentity.RoleInfluencer, userentity.VerificationPending)
	if err != nil {
		if err == sql.ErrNoRows {
			return userentity.User{}, errors.NotFound("no pending verification for this influencer")
		}
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to set verification status: %v", err))
		return userentity.User{}, errors.InternalServerError("failed to set verification status")
	}

	return user, nil
}

func (r *repositories) AnalyticsSummary(ctx context.Context, from, to time.Time) (entity.AnalyticsSummary, error) {
	query := `
		SELECT COUNT(*) AS total_bookings,
		       COUNT(*) FILTER (WHERE payment_status = 'paid') AS paid_bookings,
		       COUNT(*) FILTER (WHERE payment_status = 'refunded') AS refunded_bookings,
		       COALESCE(SUM(amount_paid) FILTER (WHERE payment_status = 'paid'), 0) AS gross_revenue,
		       COALESCE(SUM(commission_taken) FILTER (WHERE payment_status = 'paid'), 0) AS commission_earned,
		       COALESCE(SUM(amount_paid) FILTER (WHERE payment_status = 'refunded'), 0) AS refunded_amount
		FROM bookings
		WHERE created_at >= $1 AND created_at < $2`

	var summary entity.AnalyticsSummary
	if err := r.db.GetContext(ctx, &summary, query, from, to); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to build analytics summary: %v", err))
		return entity.AnalyticsSummary{}, errors.InternalServerError("failed to build analytics summary")
	}

	return summary, nil
}

func (r *repositories) CountUsers(ctx context.Context) (entity.UserCounts, error) {
	query := `
		SELECT COUNT(*) AS total_users,
		       COUNT(*) FILTER (WHERE role = $1) AS total_influencers,
		       COUNT(*) FILTER (WHERE role = $1 AND verification_status = $2) AS verified_influencers
		FROM users`

	var counts entity.UserCounts
	if err := r.db.GetContext(ctx, &counts, query, userentity.RoleInfluencer, userentity.VerificationApproved); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to count users: %v", err))
		return entity.UserCounts{}, errors.InternalServerError("failed to count users")
	}

	return counts, nil
}

func (r *repositories) InfluencerBreakdown(ctx context.Context, from, to time.Time) ([]entity.InfluencerPerformance, error) {
	query := `
		SELECT b.influencer_id, i.email,
		       COUNT(*) AS call_count,
		       COALESCE(SUM(b.amount_paid), 0) AS revenue,
		       COALESCE(SUM(b.commission_taken), 0) AS commission
		FROM bookings b
		JOIN users i ON i.id = b.influencer_id
		WHERE b.payment_status = 'paid' AND b.created_at >= $1 AND b.created_at < $2
		GROUP BY b.influencer_id, i.email
		ORDER BY revenue DESC`

	performance := []entity.InfluencerPerformance{}
	if err := r.db.SelectContext(ctx, &performance, query, from, to); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to build influencer breakdown: %v", err))
		return nil, errors.InternalServerError("failed to build influencer breakdown")
	}

	return performance, nil
}
