package usecases

import (
	"context"
	"fmt"
	"time"

	"callbooking-service/internal/module/admin/models/entity"
	"callbooking-service/internal/module/admin/models/request"
	"callbooking-service/internal/module/admin/models/response"
	"callbooking-service/internal/module/admin/repositories"
	bookingrequest "callbooking-service/internal/module/booking/models/request"
	userentity "callbooking-service/internal/module/user/models/entity"
	"callbooking-service/internal/pkg/errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const defaultBookingPageSize = 20

type Usecase interface {
	ListBookings(ctx context.Context, payload *request.Pagination) ([]response.BookingOverview, error)
	SetCommission(ctx context.Context, influencerID uuid.UUID, payload *request.SetCommission) error
	ListPendingVerifications(ctx context.Context) ([]response.VerificationRequest, error)
	ReviewVerification(ctx context.Context, influencerID uuid.UUID, payload *request.ReviewVerification) error
	AnalyticsSummary(ctx context.Context, payload *request.AnalyticsQuery) (response.AnalyticsSummary, error)
}

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

func (u *usecase) ListBookings(ctx context.Context, payload *request.Pagination) ([]response.BookingOverview, error) {
	page := payload.Page
	if page < 1 {
		page = 1
	}
	limit := payload.Limit
	if limit < 1 {
		limit = defaultBookingPageSize
	}

	bookings, err := u.repo.ListBookings(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	resp := make([]response.BookingOverview, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, response.BookingOverview{
			ID:              b.ID,
			BookingNumber:   b.BookingNumber,
			UserEmail:       b.UserEmail,
			InfluencerEmail: b.InfluencerEmail,
			PaymentStatus:   b.PaymentStatus,
			AmountPaid:      b.AmountPaid,
			CommissionTaken: b.CommissionTaken,
			StartTime:       b.StartTime,
			CreatedAt:       b.CreatedAt,
		})
	}

	return resp, nil
}

func (u *usecase) SetCommission(ctx context.Context, influencerID uuid.UUID, payload *request.SetCommission) error {
	return u.repo.SetCommission(ctx, influencerID, payload.CommissionPercentage)
}

func (u *usecase) ListPendingVerifications(ctx context.Context) ([]response.VerificationRequest, error) {
	requests, err := u.repo.ListPendingVerifications(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.VerificationRequest, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, response.VerificationRequest{
			UserID:      req.UserID,
			Email:       req.Email,
			Name:        req.Name.String,
			Documents:   req.Documents,
			SubmittedAt: req.SubmittedAt.Time,
		})
	}

	return resp, nil
}

func (u *usecase) ReviewVerification(ctx context.Context, influencerID uuid.UUID, payload *request.ReviewVerification) error {
	if payload.Decision != userentity.VerificationApproved && payload.Decision != userentity.VerificationRejected {
		return errors.BadRequest("decision must be approved or rejected")
	}

	user, err := u.repo.SetVerificationStatus(ctx, influencerID, payload.Decision)
	if err != nil {
		return err
	}

	subject := "Your influencer verification was approved"
	body := "Congratulations, your verification has been approved. You can now publish call slots."
	if payload.Decision == userentity.VerificationRejected {
		subject = "Your influencer verification was rejected"
		body = "Your verification request has been rejected."
		if payload.Reason != "" {
			body = fmt.Sprintf("%s\nReason: %s", body, payload.Reason)
		}
	}
	u.publishNotification(ctx, user.Email, subject, body)

	return nil
}

func (u *usecase) AnalyticsSummary(ctx context.Context, payload *request.AnalyticsQuery) (response.AnalyticsSummary, error) {
	from := time.Time{}
	to := time.Now().Add(24 * time.Hour)

	var err error
	if payload.From != "" {
		from, err = time.Parse("2006-01-02", payload.From)
		if err != nil {
			return response.AnalyticsSummary{}, errors.BadRequest("invalid from date")
		}
	}
	if payload.To != "" {
		to, err = time.Parse("2006-01-02", payload.To)
		if err != nil {
			return response.AnalyticsSummary{}, errors.BadRequest("invalid to date")
		}
		to = to.Add(24 * time.Hour)
	}
	if to.Before(from) {
		return response.AnalyticsSummary{}, errors.BadRequest("to date must not be before from date")
	}

	summary, err := u.repo.AnalyticsSummary(ctx, from, to)
	if err != nil {
		return response.AnalyticsSummary{}, err
	}

	counts, err := u.repo.CountUsers(ctx)
	if err != nil {
		return response.AnalyticsSummary{}, err
	}

	breakdown, err := u.repo.InfluencerBreakdown(ctx, from, to)
	if err != nil {
		return response.AnalyticsSummary{}, err
	}

	return toSummaryResponse(summary, counts, breakdown), nil
}

func toSummaryResponse(summary entity.AnalyticsSummary, counts entity.UserCounts, breakdown []entity.InfluencerPerformance) response.AnalyticsSummary {
	influencers := make([]response.InfluencerPerformance, 0, len(breakdown))
	for _, p := range breakdown {
		avgCost := int64(0)
		if p.CallCount > 0 {
			avgCost = p.Revenue / p.CallCount
		}
		influencers = append(influencers, response.InfluencerPerformance{
			InfluencerID: p.InfluencerID,
			Email:        p.Email,
			CallCount:    p.CallCount,
			Revenue:      p.Revenue,
			Commission:   p.Commission,
			AvgCallCost:  avgCost,
		})
	}

	return response.AnalyticsSummary{
		TotalBookings:       summary.TotalBookings,
		PaidBookings:        summary.PaidBookings,
		RefundedBookings:    summary.RefundedBookings,
		GrossRevenue:        summary.GrossRevenue,
		CommissionEarned:    summary.CommissionEarned,
		RefundedAmount:      summary.RefundedAmount,
		TotalUsers:          counts.TotalUsers,
		TotalInfluencers:    counts.TotalInfluencers,
		VerifiedInfluencers: counts.VerifiedInfluencers,
		Influencers:         influencers,
	}
}

func (u *usecase) publishNotification(ctx context.Context, recipient, subject, body string) {
	msg := bookingrequest.NotificationMessage{
		Channel:   "email",
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	}

	payload, _ := json.Marshal(msg)
	if err := u.publish.Publish("notification", message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish notification: %v", err))
	}
}
