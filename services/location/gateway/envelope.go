package gateway

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/piresc/fleetlocation/internal/pkg/constants"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/piresc/fleetlocation/internal/utils"
)

// NewLocationChangedEvent builds the payload of LOCATION_CREATED and LOCATION_UPDATED
func NewLocationChangedEvent(update *models.LocationUpdate) models.LocationChangedEvent {
	return models.LocationChangedEvent{
		VehicleID:      update.VehicleID,
		RouteID:        update.RouteID,
		Timestamp:      update.Timestamp,
		Location:       update.Location,
		Geohash:        utils.EncodeLocation(update.Location, constants.GeohashPrecision),
		Speed:          update.Speed,
		Direction:      update.Direction,
		PassengerCount: update.PassengerCount,
		Status:         update.Status,
	}
}

// NewLocationDeletedEvent builds the payload of LOCATION_DELETED
func NewLocationDeletedEvent(vehicleID models.ObjectID) models.LocationDeletedEvent {
	return models.LocationDeletedEvent{LocationID: vehicleID}
}

// MarshalEnvelope renders {"type": eventType, <payload fields>} as one flat JSON object.
// payload must encode to a JSON object without a "type" field of its own.
func MarshalEnvelope(eventType models.LocationEventType, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%s payload is not a JSON object: %w", eventType, err)
	}

	tag, err := json.Marshal(eventType)
	if err != nil {
		return nil, err
	}
	fields["type"] = tag

	return json.Marshal(fields)
}
