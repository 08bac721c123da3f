package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/config"
	"callbooking-service/internal/module/booking/models/entity"
	"callbooking-service/internal/module/booking/models/request"
	"callbooking-service/internal/module/booking/models/response"
	"callbooking-service/internal/module/booking/repositories"
	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/helpers"
	"callbooking-service/internal/pkg/paymentprovider"
)

type usecase struct {
	repo     repositories.Repositories
	log      *otelzap.Logger
	publish  message.Publisher
	provider paymentprovider.Provider
	cfg      *config.BookingConfig
}

type Usecase interface {
	BookSlot(ctx context.Context, payload *request.BookSlot, userID uuid.UUID, emailUser string) (response.BookingConfirmation, error)
	RefundBooking(ctx context.Context, bookingID uuid.UUID) (response.Booking, error)
	ShowBookings(ctx context.Context, userID uuid.UUID) ([]response.Booking, error)
	CreatePaymentIntent(ctx context.Context, payload *request.CreatePaymentIntent) (response.PaymentIntent, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, provider paymentprovider.Provider, cfg *config.BookingConfig) Usecase {
	return &usecase{
		repo:     repo,
		log:      log,
		publish:  publish,
		provider: provider,
		cfg:      cfg,
	}
}

// BookSlot reserves the slot for the user and snapshots price and
// commission on the booking; later slot edits never touch it.
func (u *usecase) BookSlot(ctx context.Context, payload *request.BookSlot, userID uuid.UUID, emailUser string) (response.BookingConfirmation, error) {
	slotID, err := uuid.Parse(payload.SlotID)
	if err != nil {
		return response.BookingConfirmation{}, errors.BadRequest("invalid slot id")
	}

	unlock, err := u.repo.LockSlot(ctx, slotID)
	if err != nil {
		return response.BookingConfirmation{}, err
	}
	defer unlock()

	detail, err := u.repo.FindSlotDetail(ctx, slotID)
	if err != nil {
		return response.BookingConfirmation{}, err
	}

	commissionPct := u.cfg.DefaultCommissionPct
	if detail.CommissionPercentage.Valid {
		commissionPct = detail.CommissionPercentage.Int64
	}

	paymentStatus := payload.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusPending
	}

	booking := entity.Booking{
		ID:              uuid.New(),
		BookingNumber:   uuid.New(),
		SlotID:          slotID,
		UserID:          userID,
		InfluencerID:    detail.InfluencerID,
		PaymentStatus:   paymentStatus,
		PaymentIntentID: payload.PaymentIntentID,
		AmountPaid:      detail.Price,
		CommissionTaken: detail.Price * commissionPct / 100,
	}

	if err := u.repo.CreateBooking(ctx, &booking); err != nil {
		return response.BookingConfirmation{}, err
	}

	callDetails := response.CallDetails{
		BookingNumber:  booking.BookingNumber.String(),
		InfluencerName: detail.InfluencerName.String,
		CallTime:       detail.StartTime.Format(time.RFC3339),
		CallCost:       helpers.FormatCents(detail.Price),
		CallLink:       fmt.Sprintf("%s/%s", u.cfg.CallLinkBase, booking.BookingNumber),
	}

	// notifications are best effort; the booking is already committed
	u.publishNotification(ctx, detail.InfluencerEmail, "New call booked", fmt.Sprintf(
		"Your slot has been booked.\nBooking number: %s\nCall time: %s\nCost: %s\nCall link: %s\nPayment status: %s",
		callDetails.BookingNumber, callDetails.CallTime, callDetails.CallCost, callDetails.CallLink, booking.PaymentStatus,
	))
	u.publishNotification(ctx, emailUser, "You booked a call", fmt.Sprintf(
		"Thank you for your booking.\nBooking number: %s\nCall time: %s\nCall cost: %s\nCall link: %s\nPayment status: %s",
		callDetails.BookingNumber, callDetails.CallTime, callDetails.CallCost, callDetails.CallLink, booking.PaymentStatus,
	))

	return response.BookingConfirmation{
		Booking:     toResponse(booking),
		CallDetails: callDetails,
	}, nil
}

// RefundBooking always converges on refunded; calling it again for an
// already refunded booking is a no-op, not an error.
func (u *usecase) RefundBooking(ctx context.Context, bookingID uuid.UUID) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if booking.PaymentStatus != entity.PaymentStatusRefunded {
		if err := u.provider.Refund(ctx, booking.PaymentIntentID); err != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error refunding payment intent %s: %v", booking.PaymentIntentID, err))
		}
	}

	if err := u.repo.MarkBookingRefunded(ctx, bookingID); err != nil {
		return response.Booking{}, err
	}

	booking.PaymentStatus = entity.PaymentStatusRefunded
	return toResponse(booking), nil
}

func (u *usecase) ShowBookings(ctx context.Context, userID uuid.UUID) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, booking := range bookings {
		resp = append(resp, toResponse(booking))
	}
	return resp, nil
}

func (u *usecase) CreatePaymentIntent(ctx context.Context, payload *request.CreatePaymentIntent) (response.PaymentIntent, error) {
	intentID, clientSecret, err := u.provider.CreateIntent(ctx, payload.Amount, "OnlyCalls call payment")
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error creating payment intent: %v", err))
		return response.PaymentIntent{}, errors.InternalServerError("error creating payment intent")
	}

	return response.PaymentIntent{
		PaymentIntentID: intentID,
		ClientSecret:    clientSecret,
	}, nil
}

func (u *usecase) publishNotification(ctx context.Context, recipient, subject, body string) {
	msg := request.NotificationMessage{
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

func toResponse(booking entity.Booking) response.Booking {
	return response.Booking{
		ID:              booking.ID.String(),
		BookingNumber:   booking.BookingNumber.String(),
		SlotID:          booking.SlotID.String(),
		InfluencerID:    booking.InfluencerID.String(),
		PaymentStatus:   booking.PaymentStatus,
		PaymentIntentID: booking.PaymentIntentID,
		AmountPaid:      booking.AmountPaid,
		CommissionTaken: booking.CommissionTaken,
	}
}
