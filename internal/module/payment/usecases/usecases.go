package usecases

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	bookingrequest "callbooking-service/internal/module/booking/models/request"
	"callbooking-service/internal/module/payment/models/entity"
	"callbooking-service/internal/module/payment/models/request"
	"callbooking-service/internal/module/payment/repositories"
)

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
}

type Usecase interface {
	ApplyEvent(ctx context.Context, event *request.PaymentProviderEvent) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

// ApplyEvent advances booking payment state from a verified provider
// event. Events arrive unordered and at least once; every branch is an
// idempotent upsert keyed by the payment intent id, and an event with no
// matching booking is acknowledged so the provider stops retrying.
func (u *usecase) ApplyEvent(ctx context.Context, event *request.PaymentProviderEvent) error {
	record := entity.WebhookEvent{
		ProviderEventID: event.EventID,
		EventType:       event.Kind,
		PaymentIntentID: sql.NullString{String: event.PaymentIntentID, Valid: event.PaymentIntentID != ""},
		Payload:         event.Payload,
	}

	fresh, err := u.repo.RecordWebhookEvent(ctx, &record)
	if err != nil {
		return err
	}
	if !fresh {
		u.log.Ctx(ctx).Info(fmt.Sprintf("duplicate webhook event %s, skipping", event.EventID))
		return nil
	}

	switch event.Kind {
	case request.EventIntentCreated:
		u.log.Ctx(ctx).Info(fmt.Sprintf("payment intent created: %s", event.PaymentIntentID))
		return nil

	case request.EventIntentSucceeded, request.EventChargeSucceeded:
		return u.applyPaid(ctx, event)

	case request.EventChargeUpdated:
		if !event.Refunded {
			u.log.Ctx(ctx).Info(fmt.Sprintf("charge update without refund for %s, no action", event.PaymentIntentID))
			return nil
		}
		return u.applyRefunded(ctx, event)

	case request.EventIntentFailed:
		// booking stays pending; the provider may retry the payment
		u.log.Ctx(ctx).Error(fmt.Sprintf("payment failed for intent %s", event.PaymentIntentID))
		return nil

	default:
		u.log.Ctx(ctx).Info(fmt.Sprintf("unhandled webhook event kind: %s", event.Kind))
		return nil
	}
}

func (u *usecase) applyPaid(ctx context.Context, event *request.PaymentProviderEvent) error {
	if event.PaymentIntentID == "" {
		u.log.Ctx(ctx).Info(fmt.Sprintf("event %s carries no payment intent, no action", event.EventID))
		return nil
	}

	booking, updated, err := u.repo.MarkBookingPaid(ctx, event.PaymentIntentID)
	if err != nil {
		return err
	}
	if !updated {
		u.log.Ctx(ctx).Info(fmt.Sprintf("no pending booking for intent %s, no action", event.PaymentIntentID))
		return nil
	}

	u.log.Ctx(ctx).Info(fmt.Sprintf("booking %s marked paid", booking.BookingNumber))

	email, err := u.repo.FindUserEmail(ctx, booking.UserID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error resolving user email for booking %s: %v", booking.BookingNumber, err))
		return nil
	}
	u.publishNotification(ctx, email, booking.BookingNumber.String())
	return nil
}

func (u *usecase) applyRefunded(ctx context.Context, event *request.PaymentProviderEvent) error {
	if event.PaymentIntentID == "" {
		u.log.Ctx(ctx).Info(fmt.Sprintf("event %s carries no payment intent, no action", event.EventID))
		return nil
	}

	booking, updated, err := u.repo.MarkBookingRefunded(ctx, event.PaymentIntentID)
	if err != nil {
		return err
	}
	if !updated {
		u.log.Ctx(ctx).Info(fmt.Sprintf("no refundable booking for intent %s, no action", event.PaymentIntentID))
		return nil
	}

	u.log.Ctx(ctx).Info(fmt.Sprintf("booking %s marked refunded", booking.BookingNumber))
	return nil
}

func (u *usecase) publishNotification(ctx context.Context, recipient, bookingNumber string) {
	msg := bookingrequest.NotificationMessage{
		Channel:   "email",
		Recipient: recipient,
		Subject:   "Payment confirmed",
		Body:      fmt.Sprintf("Payment for booking %s has been confirmed.", bookingNumber),
	}

	payload, _ := json.Marshal(msg)
	if err := u.publish.Publish("notification", message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish payment notification: %v", err))
	}
}
