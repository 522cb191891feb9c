package models

// VehicleStatus is the registry-side lifecycle state of a vehicle
type VehicleStatus string

const (
	VehicleInService    VehicleStatus = "IN_SERVICE"
	VehicleOutOfService VehicleStatus = "OUT_OF_SERVICE"
	VehicleMaintenance  VehicleStatus = "MAINTENANCE"
)

// Vehicle is the descriptor returned by the vehicle registry.
// Only its resolution matters to the location pipeline; the fields are kept for logging.
type Vehicle struct {
	VehicleID     ObjectID      `json:"vehicleId"`
	LicensePlate  string        `json:"licensePlate"`
	Capacity      int           `json:"capacity"`
	CurrentStatus VehicleStatus `json:"currentStatus"`
	Type          string        `json:"type"`
	RouteID       ObjectID      `json:"routeId"`
}
