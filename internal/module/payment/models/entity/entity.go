package entity

import (
	"database/sql"
	"time"
)

// WebhookEvent stores every received provider event keyed by the provider
// event id, giving at-least-once delivery a dedup point.
type WebhookEvent struct {
	ID              int64          `db:"id"`
	ProviderEventID string         `db:"provider_event_id"`
	EventType       string         `db:"event_type"`
	PaymentIntentID sql.NullString `db:"payment_intent_id"`
	Payload         []byte         `db:"payload"`
	ReceivedAt      time.Time      `db:"received_at"`
}
