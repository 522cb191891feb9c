package gateway

import (
	"context"

	nrpkg "github.com/piresc/fleetlocation/internal/pkg/newrelic"
	"github.com/piresc/fleetlocation/services/location"
)

// NSQProducer is the part of the NSQ producer the publisher needs
type NSQProducer interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

type nsqPublisher struct {
	producer NSQProducer
}

// NewNSQPublisher publishes through nsqd. NSQ has no message key, so key is dropped;
// consumers read the vehicle id from the envelope.
func NewNSQPublisher(producer NSQProducer) location.EventPublisher {
	return &nsqPublisher{producer: producer}
}

func (p *nsqPublisher) Publish(ctx context.Context, topic, _ string, body []byte) error {
	return nrpkg.InstrumentPublish(ctx, "NSQ", topic, func() error {
		return p.producer.Publish(ctx, topic, body)
	})
}
