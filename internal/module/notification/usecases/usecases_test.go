package usecases_test

import (
	"context"
	"testing"

	"callbooking-service/internal/module/notification/mocks"
	"callbooking-service/internal/module/notification/models/request"
	"callbooking-service/internal/module/notification/usecases"
	logpkg "callbooking-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
)

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("routes email notifications to the mailer", func(t *testing.T) {
		repoMock := new(mocks.Repositories)
		uc := usecases.New(repoMock, logpkg.Setup())

		repoMock.On("SendEmail", ctx, "user@example.com", "Hi", "body").Return(nil).Once()

		err := uc.Dispatch(ctx, &request.NotificationMessage{
			Channel:   "email",
			Recipient: "user@example.com",
			Subject:   "Hi",
			Body:      "body",
		})

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("routes sms notifications to the gateway", func(t *testing.T) {
		repoMock := new(mocks.Repositories)
		uc := usecases.New(repoMock, logpkg.Setup())

		repoMock.On("SendSms", ctx, "+15550001111", "your code").Return(nil).Once()

		err := uc.Dispatch(ctx, &request.NotificationMessage{
			Channel:   "sms",
			Recipient: "+15550001111",
			Body:      "your code",
		})

		assert.NoError(t, err)
	})

	t.Run("unknown channel is an error", func(t *testing.T) {
		repoMock := new(mocks.Repositories)
		uc := usecases.New(repoMock, logpkg.Setup())

		err := uc.Dispatch(ctx, &request.NotificationMessage{
			Channel:   "carrier-pigeon",
			Recipient: "roof",
			Body:      "coo",
		})

		assert.Error(t, err)
	})
}
