package command

import (
	"context"
	"fmt"

	"github.com/piresc/fleetlocation/internal/pkg/constants"
	"github.com/piresc/fleetlocation/internal/pkg/health"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	natspkg "github.com/piresc/fleetlocation/internal/pkg/nats"
	nsqpkg "github.com/piresc/fleetlocation/internal/pkg/nsq"
	"github.com/piresc/fleetlocation/services/location"
	"github.com/piresc/fleetlocation/services/location/gateway"
)

// broker is the event destination selected by BROKER_DRIVER
type broker struct {
	name      string
	publisher location.EventPublisher
	topic     string
	checker   health.HealthChecker
	close     func(context.Context) error
}

func newBroker(ctx context.Context, configs *models.Config) (*broker, error) {
	switch configs.Broker.Driver {
	case constants.BrokerNATS:
		client, err := natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			return nil, err
		}
		stream := natspkg.LocationEventsStream(configs.NATS.Stream, configs.NATS.Subject)
		if err := client.EnsureStream(ctx, stream); err != nil {
			client.Close()
			return nil, err
		}
		return &broker{
			name:      constants.BrokerNATS,
			publisher: gateway.NewNATSPublisher(client, configs.NATS.PublishTimeout),
			topic:     stream.Subjects[0],
			checker:   health.NewNATSHealthChecker(client),
			close:     func(context.Context) error { client.Close(); return nil },
		}, nil

	case constants.BrokerNSQ:
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			return nil, err
		}
		topic := configs.NSQ.Topic
		if topic == "" {
			topic = constants.TopicLocationEvents
		}
		return &broker{
			name:      constants.BrokerNSQ,
			publisher: gateway.NewNSQPublisher(producer),
			topic:     topic,
			checker:   health.NewNSQHealthChecker(producer),
			close:     func(context.Context) error { producer.Stop(); return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported broker driver %q", configs.Broker.Driver)
	}
}
