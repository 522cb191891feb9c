package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/piresc/fleetlocation/services/location"
)

type locationGW struct {
	publisher location.EventPublisher
	topic     string
}

// NewLocationGW publishes location events to topic through publisher
func NewLocationGW(publisher location.EventPublisher, topic string) location.LocationGW {
	return &locationGW{
		publisher: publisher,
		topic:     topic,
	}
}

func (g *locationGW) PublishLocationCreated(ctx context.Context, update *models.LocationUpdate) error {
	return g.publish(ctx, models.LocationCreated, update.VehicleID, NewLocationChangedEvent(update))
}

func (g *locationGW) PublishLocationUpdated(ctx context.Context, update *models.LocationUpdate) error {
	return g.publish(ctx, models.LocationUpdated, update.VehicleID, NewLocationChangedEvent(update))
}

func (g *locationGW) PublishLocationDeleted(ctx context.Context, vehicleID models.ObjectID) error {
	return g.publish(ctx, models.LocationDeleted, vehicleID, NewLocationDeletedEvent(vehicleID))
}

// publish folds encoding and broker failures into one error
func (g *locationGW) publish(ctx context.Context, eventType models.LocationEventType, key models.ObjectID, payload interface{}) error {
	body, err := MarshalEnvelope(eventType, payload)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	if err := g.publisher.Publish(ctx, g.topic, key.Hex(), body); err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return nil
}
