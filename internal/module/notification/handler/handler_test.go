package handler_test

import (
	"testing"

	"callbooking-service/internal/module/notification/handler"
	"callbooking-service/internal/module/notification/mocks"
	"callbooking-service/internal/module/notification/models/request"
	logpkg "callbooking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newHandler(ucm *mocks.Usecase) *handler.NotificationHandler {
	return &handler.NotificationHandler{
		Log:       logpkg.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
}

func TestConsumeNotification(t *testing.T) {
	t.Run("valid message is dispatched", func(t *testing.T) {
		ucm := new(mocks.Usecase)
		h := newHandler(ucm)

		payload, _ := json.Marshal(request.NotificationMessage{
			Channel:   "email",
			Recipient: "user@example.com",
			Subject:   "Hi",
			Body:      "body",
		})
		msg := message.NewMessage(watermill.NewUUID(), payload)

		ucm.On("Dispatch", mock.Anything, mock.AnythingOfType("*request.NotificationMessage")).Return(nil).Once()

		err := h.ConsumeNotification(msg)

		assert.NoError(t, err)
		ucm.AssertExpectations(t)
	})

	t.Run("malformed payload goes to the poison queue", func(t *testing.T) {
		ucm := new(mocks.Usecase)
		h := newHandler(ucm)

		msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))

		err := h.ConsumeNotification(msg)

		assert.Error(t, err)
		ucm.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("invalid channel fails validation", func(t *testing.T) {
		ucm := new(mocks.Usecase)
		h := newHandler(ucm)

		payload, _ := json.Marshal(request.NotificationMessage{
			Channel:   "pager",
			Recipient: "user@example.com",
			Body:      "body",
		})
		msg := message.NewMessage(watermill.NewUUID(), payload)

		err := h.ConsumeNotification(msg)

		assert.Error(t, err)
	})
}
