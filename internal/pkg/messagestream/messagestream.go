package messagestream

import (
	"fmt"
	"time"

	"turf-booking-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

type Amqp struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) *Amqp {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	return &Amqp{
		cfg:    amqp.NewDurableQueueConfig(uri),
		logger: watermill.NewStdLogger(false, false),
	}
}

func (a *Amqp) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(a.cfg, a.logger)
}

func (a *Amqp) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(a.cfg, a.logger)
}

// NewRouter consumes topic with handlerFunc. Messages that keep failing after retries are
// forwarded to poisonedTopic.
func NewRouter(publisher message.Publisher, poisonedTopic string, handlerName string, topic string, subscriber message.Subscriber, handlerFunc func(msg *message.Message) error) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonedTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			Multiplier:      2,
			Logger:          logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
