package nsq

import (
	"context"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/fleetlocation/internal/pkg/logger"
)

// Producer publishes messages to an nsqd instance
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a producer and pings nsqd
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends body to topic and waits for nsqd to acknowledge it or ctx to end
func (p *Producer) Publish(ctx context.Context, topic string, body []byte) error {
	done := make(chan *nsq.ProducerTransaction, 1)
	if err := p.producer.PublishAsync(topic, body, done); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	select {
	case tx := <-done:
		if tx.Error != nil {
			return fmt.Errorf("failed to publish message: %w", tx.Error)
		}
		logger.Debug("Published message to NSQ", logger.String("topic", topic))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("publish to %s not acknowledged: %w", topic, ctx.Err())
	}
}

// Ping checks connectivity to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
