package response

type Booking struct {
	ID              string `json:"id"`
	BookingNumber   string `json:"booking_number"`
	SlotID          string `json:"slot_id"`
	InfluencerID    string `json:"influencer_id"`
	PaymentStatus   string `json:"payment_status"`
	PaymentIntentID string `json:"payment_intent_id"`
	AmountPaid      int64  `json:"amount_paid"`
	CommissionTaken int64  `json:"commission_taken"`
}

type CallDetails struct {
	BookingNumber  string `json:"booking_number"`
	InfluencerName string `json:"influencer_name"`
	CallTime       string `json:"call_time"`
	CallCost       string `json:"call_cost"`
	CallLink       string `json:"call_link"`
}

type BookingConfirmation struct {
	Booking     Booking     `json:"booking"`
	CallDetails CallDetails `json:"call_details"`
}

type PaymentIntent struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
}
