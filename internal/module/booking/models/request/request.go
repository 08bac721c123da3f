package request

type BookSlot struct {
	SlotID          string `json:"slot_id" validate:"required,uuid4"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
	PaymentStatus   string `json:"payment_status" validate:"omitempty,oneof=pending paid"`
}

type CreatePaymentIntent struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type NotificationMessage struct {
	Channel   string `json:"channel" validate:"required,oneof=email sms"`
	Recipient string `json:"recipient" validate:"required"`
	Subject   string `json:"subject"`
	Body      string `json:"body" validate:"required"`
}
