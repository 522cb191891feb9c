package models

import "time"

// Direction is the compass heading reported by a vehicle
type Direction string

const (
	DirectionNorth     Direction = "NORTH"
	DirectionSouth     Direction = "SOUTH"
	DirectionEast      Direction = "EAST"
	DirectionWest      Direction = "WEST"
	DirectionNorthEast Direction = "NORTHEAST"
	DirectionNorthWest Direction = "NORTHWEST"
	DirectionSouthEast Direction = "SOUTHEAST"
	DirectionSouthWest Direction = "SOUTHWEST"
)

// OperationalStatus is the operational state of a vehicle at observation time
type OperationalStatus string

const (
	StatusOnRoute      OperationalStatus = "ON_ROUTE"
	StatusStopped      OperationalStatus = "STOPPED"
	StatusDelayed      OperationalStatus = "DELAYED"
	StatusOutOfService OperationalStatus = "OUT_OF_SERVICE"
)

// EventType classifies an operational occurrence attached to a location update
type EventType string

const (
	EventStopArrival   EventType = "STOP_ARRIVAL"
	EventStopDeparture EventType = "STOP_DEPARTURE"
	EventDelay         EventType = "DELAY"
	EventIncident      EventType = "INCIDENT"
)

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Event is an operational occurrence owned by a LocationUpdate
type Event struct {
	EventID   string    `json:"eventId"`
	Type      EventType `json:"type" validate:"omitempty,oneof=STOP_ARRIVAL STOP_DEPARTURE DELAY INCIDENT"`
	StopID    string    `json:"stopId"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// LocationUpdate is the last known location record of a vehicle.
// VehicleID is the record's key; there is one record per vehicle.
type LocationUpdate struct {
	VehicleID      ObjectID          `json:"vehicleId" validate:"required"`
	RouteID        ObjectID          `json:"routeId" validate:"required"`
	Timestamp      time.Time         `json:"timestamp"`
	Location       Coordinates       `json:"location"`
	Speed          float64           `json:"speed" validate:"gte=0"`
	Direction      Direction         `json:"direction" validate:"omitempty,oneof=NORTH SOUTH EAST WEST NORTHEAST NORTHWEST SOUTHEAST SOUTHWEST"`
	PassengerCount int               `json:"passengerCount" validate:"gte=0"`
	Status         OperationalStatus `json:"status" validate:"omitempty,oneof=ON_ROUTE STOPPED DELAYED OUT_OF_SERVICE"`
	Events         []Event           `json:"events" validate:"dive"`
}

// LocationUpdateCommand is a partial update of a LocationUpdate.
// A nil field leaves the stored value unchanged; Events, when non-nil, replaces the whole sequence.
type LocationUpdateCommand struct {
	RouteID        *ObjectID          `json:"routeId,omitempty"`
	Timestamp      *time.Time         `json:"timestamp,omitempty"`
	Location       *Coordinates       `json:"location,omitempty"`
	Speed          *float64           `json:"speed,omitempty" validate:"omitempty,gte=0"`
	Direction      *Direction         `json:"direction,omitempty" validate:"omitempty,oneof=NORTH SOUTH EAST WEST NORTHEAST NORTHWEST SOUTHEAST SOUTHWEST"`
	PassengerCount *int               `json:"passengerCount,omitempty" validate:"omitempty,gte=0"`
	Status         *OperationalStatus `json:"status,omitempty" validate:"omitempty,oneof=ON_ROUTE STOPPED DELAYED OUT_OF_SERVICE"`
	Events         []Event            `json:"events,omitempty" validate:"omitempty,dive"`
}
