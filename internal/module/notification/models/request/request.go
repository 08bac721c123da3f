package request

type NotificationMessage struct {
	Channel   string `json:"channel" validate:"required,oneof=email sms"`
	Recipient string `json:"recipient" validate:"required"`
	Subject   string `json:"subject" validate:"omitempty,max=200"`
	Body      string `json:"body" validate:"required"`
}
