package paymentprovider

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/refund"
	"github.com/stripe/stripe-go/v79/webhook"

	"callbooking-service/config"
)

// Provider is the boundary to the payment provider. VerifyEvent must be
// fed the exact raw request body; the signature covers those bytes.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, description string) (intentID string, clientSecret string, err error)
	Refund(ctx context.Context, paymentIntentID string) error
	VerifyEvent(payload []byte, signatureHeader string) (stripe.Event, error)
}

type stripeProvider struct {
	webhookSecret string
	currency      string
}

func NewStripe(cfg *config.StripeConfig) Provider {
	stripe.Key = cfg.SecretKey
	return &stripeProvider{
		webhookSecret: cfg.WebhookSecret,
		currency:      cfg.Currency,
	}
}

func (s *stripeProvider) CreateIntent(ctx context.Context, amount int64, description string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(s.currency),
		Description: stripe.String(description),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", err
	}
	return intent.ID, intent.ClientSecret, nil
}

func (s *stripeProvider) Refund(ctx context.Context, paymentIntentID string) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx

	_, err := refund.New(params)
	return err
}

func (s *stripeProvider) VerifyEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
}
