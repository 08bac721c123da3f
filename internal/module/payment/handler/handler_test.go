package handler_test

import (
	"testing"

	"callbooking-service/internal/module/payment/handler"
	"callbooking-service/internal/module/payment/mocks"
	"callbooking-service/internal/module/payment/models/request"
	logpkg "callbooking-service/internal/pkg/log"
	providermocks "callbooking-service/internal/pkg/paymentprovider/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v79"
	"github.com/valyala/fasthttp"
)

var (
	h            *handler.PaymentHandler
	ucm          *mocks.Usecase
	providerMock *providermocks.Provider
	app          *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	providerMock = &providermocks.Provider{}
	h = &handler.PaymentHandler{
		Log:       logpkg.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
		Provider:  providerMock,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	providerMock = nil
	h = nil
	app = nil
}

func webhookCtx(body []byte, signature string) *fiber.Ctx {
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	ctx.Request().SetRequestURI("/api/webhook/payment")
	ctx.Request().Header.SetMethod("POST")
	ctx.Request().Header.Set("Stripe-Signature", signature)
	ctx.Request().SetBody(body)
	return ctx
}

func TestHandleWebhook(t *testing.T) {
	setup()
	defer teardown()

	t.Run("bad signature is rejected without touching state", func(t *testing.T) {
		body := []byte(`{"id":"evt_1"}`)
		ctx := webhookCtx(body, "bad-signature")
		defer app.ReleaseCtx(ctx)

		providerMock.On("VerifyEvent", body, "bad-signature").
			Return(stripe.Event{}, assert.AnError).Once()

		err := h.HandleWebhook(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "ApplyEvent", mock.Anything, mock.Anything)
	})

	t.Run("verified charge event reaches the reconciler", func(t *testing.T) {
		body := []byte(`ignored, the provider mock owns parsing`)
		event := stripe.Event{
			ID:   "evt_2",
			Type: stripe.EventType(request.EventChargeSucceeded),
			Data: &stripe.EventData{
				Raw: []byte(`{"payment_intent":"pi_1","refunded":false}`),
			},
		}

		ctx := webhookCtx(body, "good-signature")
		defer app.ReleaseCtx(ctx)

		providerMock.On("VerifyEvent", body, "good-signature").Return(event, nil).Once()
		ucm.On("ApplyEvent", mock.Anything, &request.PaymentProviderEvent{
			EventID:         "evt_2",
			Kind:            request.EventChargeSucceeded,
			PaymentIntentID: "pi_1",
			Payload:         event.Data.Raw,
		}).Return(nil).Once()

		err := h.HandleWebhook(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
		ucm.AssertExpectations(t)
	})

	t.Run("refunded charge update carries the refund flag", func(t *testing.T) {
		body := []byte(`raw`)
		event := stripe.Event{
			ID:   "evt_3",
			Type: stripe.EventType(request.EventChargeUpdated),
			Data: &stripe.EventData{
				Raw: []byte(`{"payment_intent":"pi_2","refunded":true}`),
			},
		}

		ctx := webhookCtx(body, "good-signature")
		defer app.ReleaseCtx(ctx)

		providerMock.On("VerifyEvent", body, "good-signature").Return(event, nil).Once()
		ucm.On("ApplyEvent", mock.Anything, &request.PaymentProviderEvent{
			EventID:         "evt_3",
			Kind:            request.EventChargeUpdated,
			PaymentIntentID: "pi_2",
			Refunded:        true,
			Payload:         event.Data.Raw,
		}).Return(nil).Once()

		err := h.HandleWebhook(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}
