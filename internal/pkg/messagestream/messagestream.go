package messagestream

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"callbooking-service/config"
)

type MessageStream interface {
	NewSubscriber() (message.Subscriber, error)
	NewPublisher() (message.Publisher, error)
}

type ampq struct {
	cfg    *config.MessageStreamConfig
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) MessageStream {
	return &ampq{
		cfg:    cfg,
		logger: watermill.NewStdLogger(false, false),
	}
}

func (a *ampq) uri() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", a.cfg.Username, a.cfg.Password, a.cfg.Host, a.cfg.Port)
}

func (a *ampq) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(amqp.NewDurableQueueConfig(a.uri()), a.logger)
}

func (a *ampq) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(amqp.NewDurableQueueConfig(a.uri()), a.logger)
}

// NewRouter wires a consumer handler for a topic, with failed messages
// republished to the poison topic instead of blocking the queue.
func NewRouter(
	publisher message.Publisher,
	poisonTopic string,
	handlerName string,
	topic string,
	subscriber message.Subscriber,
	handlerFunc func(msg *message.Message) error,
) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(middleware.Recoverer, poisonQueue)
	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
