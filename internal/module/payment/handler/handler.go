package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v79"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/internal/module/payment/models/request"
	"callbooking-service/internal/module/payment/usecases"
	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/helpers"
	"callbooking-service/internal/pkg/paymentprovider"
)

type PaymentHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Provider  paymentprovider.Provider
}

// HandleWebhook verifies the provider signature over the raw body before
// anything parses it. This route must never sit behind a body-parsing
// middleware; the signature covers the exact bytes on the wire.
func (h *PaymentHandler) HandleWebhook(ctx *fiber.Ctx) error {
	payload := ctx.Body()
	signature := ctx.Get("Stripe-Signature")

	event, err := h.Provider.VerifyEvent(payload, signature)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("webhook signature verification failed: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("webhook signature verification failed"))
	}

	req := mapEvent(&event)
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate webhook event: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("malformed webhook event"))
	}

	if err := h.Usecase.ApplyEvent(ctx.UserContext(), req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error apply webhook event: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}

func mapEvent(event *stripe.Event) *request.PaymentProviderEvent {
	req := &request.PaymentProviderEvent{
		EventID: event.ID,
		Kind:    string(event.Type),
		Payload: event.Data.Raw,
	}

	switch req.Kind {
	case request.EventIntentCreated, request.EventIntentSucceeded, request.EventIntentFailed:
		var intent struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(event.Data.Raw, &intent); err == nil {
			req.PaymentIntentID = intent.ID
		}
	case request.EventChargeSucceeded, request.EventChargeUpdated:
		var charge struct {
			PaymentIntent string `json:"payment_intent"`
			Refunded      bool   `json:"refunded"`
		}
		if err := json.Unmarshal(event.Data.Raw, &charge); err == nil {
			req.PaymentIntentID = charge.PaymentIntent
			req.Refunded = charge.Refunded
		}
	}

	return req
}
