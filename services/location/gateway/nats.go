package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/fleetlocation/internal/pkg/constants"
	natspkg "github.com/piresc/fleetlocation/internal/pkg/nats"
	nrpkg "github.com/piresc/fleetlocation/internal/pkg/newrelic"
	"github.com/piresc/fleetlocation/services/location"
)

type natsPublisher struct {
	client  *natspkg.Client
	timeout time.Duration
}

// NewNATSPublisher publishes through JetStream and waits for the stream acknowledgement.
// The key travels in the Event-Key header.
func NewNATSPublisher(client *natspkg.Client, timeout time.Duration) location.EventPublisher {
	return &natsPublisher{
		client:  client,
		timeout: timeout,
	}
}

func (p *natsPublisher) Publish(ctx context.Context, topic, key string, body []byte) error {
	headers := map[string]string{}
	if key != "" {
		headers[constants.HeaderEventKey] = key
	}

	return nrpkg.InstrumentPublish(ctx, "NATS", topic, func() error {
		_, err := p.client.PublishWithOptions(ctx, natspkg.PublishOptions{
			Subject: topic,
			Data:    body,
			MsgID:   uuid.NewString(),
			Headers: headers,
			Timeout: p.timeout,
		})
		return err
	})
}
