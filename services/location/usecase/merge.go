package usecase

import "github.com/piresc/fleetlocation/internal/pkg/models"

// ApplyCommand writes every field set on cmd onto target and leaves the rest untouched.
// VehicleID is never written. A non-nil Events replaces the whole sequence with a copy.
func ApplyCommand(cmd *models.LocationUpdateCommand, target *models.LocationUpdate) {
	if cmd == nil || target == nil {
		return
	}
	if cmd.RouteID != nil {
		target.RouteID = *cmd.RouteID
	}
	if cmd.Timestamp != nil {
		target.Timestamp = *cmd.Timestamp
	}
	if cmd.Location != nil {
		target.Location = *cmd.Location
	}
	if cmd.Speed != nil {
		target.Speed = *cmd.Speed
	}
	if cmd.Direction != nil {
		target.Direction = *cmd.Direction
	}
	if cmd.PassengerCount != nil {
		target.PassengerCount = *cmd.PassengerCount
	}
	if cmd.Status != nil {
		target.Status = *cmd.Status
	}
	if cmd.Events != nil {
		target.Events = append(make([]models.Event, 0, len(cmd.Events)), cmd.Events...)
	}
}
