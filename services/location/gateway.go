package location

import (
	"context"

	"github.com/piresc/fleetlocation/internal/pkg/models"
)

// VehicleGW checks vehicles against the external registry
type VehicleGW interface {
	// ResolveVehicle reports false when the vehicle cannot be resolved for any reason
	ResolveVehicle(ctx context.Context, vehicleID models.ObjectID) (*models.Vehicle, bool)
}

// LocationGW emits location lifecycle events
type LocationGW interface {
	PublishLocationCreated(ctx context.Context, update *models.LocationUpdate) error
	PublishLocationUpdated(ctx context.Context, update *models.LocationUpdate) error
	PublishLocationDeleted(ctx context.Context, vehicleID models.ObjectID) error
}

// EventPublisher hands a serialized envelope to a broker destination and waits for its acknowledgement
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, body []byte) error
}
