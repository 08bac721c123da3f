package usecases_test

import (
	"context"
	"testing"
	"time"

	"callbooking-service/internal/module/admin/mocks"
	"callbooking-service/internal/module/admin/models/entity"
	"callbooking-service/internal/module/admin/models/request"
	"callbooking-service/internal/module/admin/usecases"
	userentity "callbooking-service/internal/module/user/models/entity"
	"callbooking-service/internal/pkg/errors"
	logpkg "callbooking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

type mockPublisher struct {
	published []string
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		m.published = append(m.published, string(msg.Payload))
	}
	return nil
}

var publisher *mockPublisher

func setup() {
	repoMock = new(mocks.Repositories)
	publisher = &mockPublisher{}
	uc = usecases.New(repoMock, logpkg.Setup(), publisher)
}

func teardown() {
	repoMock = nil
	publisher = nil
	uc = nil
}

func TestListBookings(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("defaults page and limit", func(t *testing.T) {
		repoMock.On("ListBookings", ctx, 20, 0).Return([]entity.BookingOverview{
			{ID: uuid.New(), BookingNumber: uuid.NewString(), PaymentStatus: "paid"},
		}, nil).Once()

		resp, err := uc.ListBookings(ctx, &request.Pagination{})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("second page offsets by the limit", func(t *testing.T) {
		repoMock.On("ListBookings", ctx, 50, 50).Return([]entity.BookingOverview{}, nil).Once()

		resp, err := uc.ListBookings(ctx, &request.Pagination{Page: 2, Limit: 50})

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestReviewVerification(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	influencerID := uuid.New()
	influencer := userentity.User{
		ID:    influencerID,
		Email: "jane@example.com",
		Role:  userentity.RoleInfluencer,
	}

	t.Run("approval notifies the influencer", func(t *testing.T) {
		repoMock.On("SetVerificationStatus", ctx, influencerID, userentity.VerificationApproved).
			Return(influencer, nil).Once()

		err := uc.ReviewVerification(ctx, influencerID, &request.ReviewVerification{
			Decision: userentity.VerificationApproved,
		})

		assert.NoError(t, err)
		assert.Len(t, publisher.published, 1)
		assert.Contains(t, publisher.published[0], "jane@example.com")
		assert.Contains(t, publisher.published[0], "approved")
	})

	t.Run("rejection includes the reason", func(t *testing.T) {
		repoMock.On("SetVerificationStatus", ctx, influencerID, userentity.VerificationRejected).
			Return(influencer, nil).Once()

		err := uc.ReviewVerification(ctx, influencerID, &request.ReviewVerification{
			Decision: userentity.VerificationRejected,
			Reason:   "documents unreadable",
		})

		assert.NoError(t, err)
		assert.Contains(t, publisher.published[len(publisher.published)-1], "documents unreadable")
	})

	t.Run("no pending verification", func(t *testing.T) {
		repoMock.On("SetVerificationStatus", ctx, influencerID, userentity.VerificationApproved).
			Return(userentity.User{}, errors.NotFound("no pending verification for this influencer")).Once()

		err := uc.ReviewVerification(ctx, influencerID, &request.ReviewVerification{
			Decision: userentity.VerificationApproved,
		})

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 404, resp.Code)
	})
}

func TestAnalyticsSummary(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("date range is inclusive of the to day", func(t *testing.T) {
		from, _ := time.Parse("2006-01-02", "2026-08-01")
		to, _ := time.Parse("2006-01-02", "2026-08-31")

		repoMock.On("AnalyticsSummary", ctx, from, to.Add(24*time.Hour)).Return(entity.AnalyticsSummary{
			TotalBookings:    10,
			PaidBookings:     7,
			RefundedBookings: 1,
			GrossRevenue:     70000,
			CommissionEarned: 21000,
			RefundedAmount:   10000,
		}, nil).Once()
		repoMock.On("CountUsers", ctx).Return(entity.UserCounts{
			TotalUsers:          40,
			TotalInfluencers:    5,
			VerifiedInfluencers: 3,
		}, nil).Once()
		influencerID := uuid.New()
		repoMock.On("InfluencerBreakdown", ctx, from, to.Add(24*time.Hour)).Return([]entity.InfluencerPerformance{
			{InfluencerID: influencerID, Email: "jane@example.com", CallCount: 4, Revenue: 40000, Commission: 12000},
		}, nil).Once()

		resp, err := uc.AnalyticsSummary(ctx, &request.AnalyticsQuery{From: "2026-08-01", To: "2026-08-31"})

		assert.NoError(t, err)
		assert.Equal(t, int64(10), resp.TotalBookings)
		assert.Equal(t, int64(21000), resp.CommissionEarned)
		assert.Equal(t, int64(40), resp.TotalUsers)
		assert.Len(t, resp.Influencers, 1)
		assert.Equal(t, int64(10000), resp.Influencers[0].AvgCallCost)
	})

	t.Run("no range covers everything", func(t *testing.T) {
		repoMock.On("AnalyticsSummary", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(entity.AnalyticsSummary{}, nil).Once()
		repoMock.On("CountUsers", ctx).Return(entity.UserCounts{}, nil).Once()
		repoMock.On("InfluencerBreakdown", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]entity.InfluencerPerformance{}, nil).Once()

		_, err := uc.AnalyticsSummary(ctx, &request.AnalyticsQuery{})

		assert.NoError(t, err)
	})

	t.Run("reversed range is rejected", func(t *testing.T) {
		_, err := uc.AnalyticsSummary(ctx, &request.AnalyticsQuery{From: "2026-08-31", To: "2026-08-01"})

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 400, resp.Code)
	})
}
