package usecases

import (
	"context"

	"callbooking-service/internal/module/notification/models/request"
	"callbooking-service/internal/module/notification/repositories"
	"callbooking-service/internal/pkg/errors"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Usecase interface {
	Dispatch(ctx context.Context, payload *request.NotificationMessage) error
}

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{repo: repo, log: log}
}

func (u *usecase) Dispatch(ctx context.Context, payload *request.NotificationMessage) error {
	switch payload.Channel {
	case "email":
		return u.repo.SendEmail(ctx, payload.Recipient, payload.Subject, payload.Body)
	case "sms":
		return u.repo.SendSms(ctx, payload.Recipient, payload.Body)
	default:
		return errors.BadRequest("unsupported notification channel")
	}
}
