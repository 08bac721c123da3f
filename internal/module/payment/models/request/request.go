package request

const (
	EventIntentCreated   = "payment_intent.created"
	EventIntentSucceeded = "payment_intent.succeeded"
	EventIntentFailed    = "payment_intent.payment_failed"
	EventChargeSucceeded = "charge.succeeded"
	EventChargeUpdated   = "charge.updated"
)

// PaymentProviderEvent is the already-verified webhook event reduced to
// the fields the reconciler acts on.
type PaymentProviderEvent struct {
	EventID         string `json:"event_id" validate:"required"`
	Kind            string `json:"kind" validate:"required"`
	PaymentIntentID string `json:"payment_intent_id"`
	Refunded        bool   `json:"refunded"`
	Payload         []byte `json:"payload"`
}
