package models

import "time"

// LocationEventType is the discriminator carried in the "type" field of every event envelope
type LocationEventType string

const (
	LocationCreated LocationEventType = "LOCATION_CREATED"
	LocationUpdated LocationEventType = "LOCATION_UPDATED"
	LocationDeleted LocationEventType = "LOCATION_DELETED"
)

// LocationChangedEvent is the payload of LOCATION_CREATED and LOCATION_UPDATED
type LocationChangedEvent struct {
	VehicleID      ObjectID          `json:"vehicleId"`
	RouteID        ObjectID          `json:"routeId"`
	Timestamp      time.Time         `json:"timestamp"`
	Location       Coordinates       `json:"location"`
	Geohash        string            `json:"geohash,omitempty"`
	Speed          float64           `json:"speed"`
	Direction      Direction         `json:"direction,omitempty"`
	PassengerCount int               `json:"passengerCount"`
	Status         OperationalStatus `json:"status,omitempty"`
}

// LocationDeletedEvent is the payload of LOCATION_DELETED.
// LocationID carries the vehicle id of the removed record.
type LocationDeletedEvent struct {
	LocationID ObjectID `json:"locationId"`
}
