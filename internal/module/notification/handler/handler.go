package handler

import (
	"fmt"

	"callbooking-service/internal/module/notification/models/request"
	"callbooking-service/internal/module/notification/usecases"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type NotificationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// ConsumeNotification handles messages from the notification topic.
// Returning an error routes the message to the poison queue.
func (h *NotificationHandler) ConsumeNotification(msg *message.Message) error {
	ctx := msg.Context()

	var req request.NotificationMessage
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error parse notification message %s: %v", msg.UUID, err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate notification message %s: %v", msg.UUID, err))
		return err
	}

	if err := h.Usecase.Dispatch(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error dispatch notification message %s: %v", msg.UUID, err))
		return err
	}

	return nil
}
