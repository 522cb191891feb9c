package location

import (
	"errors"
	"fmt"

	"github.com/piresc/fleetlocation/internal/pkg/models"
)

// Error kinds returned by LocationUC. Match them with errors.Is.
var (
	// ErrVehicleNotFound means the registry did not resolve the vehicle at create time
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrLocationNotFound means no location update exists for the vehicle
	ErrLocationNotFound = errors.New("location not found")
	// ErrLocationSaveFailed means a store operation failed; the command may be retried
	ErrLocationSaveFailed = errors.New("error saving location update")
	// ErrPublicationFailed means the state change committed but its event was not acknowledged
	ErrPublicationFailed = errors.New("location event not published")
	// ErrInvalidCommand means the command is missing its vehicle identity
	ErrInvalidCommand = errors.New("invalid location command")
)

// Error carries the kind, the vehicle concerned and, when there is one, the underlying cause
type Error struct {
	Kind      error
	VehicleID models.ObjectID
	Event     models.LocationEventType
	Cause     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s with id: %s", e.Kind, e.VehicleID)
	if e.Event != "" {
		msg += fmt.Sprintf(" (%s)", e.Event)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func NewVehicleNotFound(vehicleID models.ObjectID) error {
	return &Error{Kind: ErrVehicleNotFound, VehicleID: vehicleID}
}

func NewLocationNotFound(vehicleID models.ObjectID) error {
	return &Error{Kind: ErrLocationNotFound, VehicleID: vehicleID}
}

func NewLocationSaveFailed(vehicleID models.ObjectID, cause error) error {
	return &Error{Kind: ErrLocationSaveFailed, VehicleID: vehicleID, Cause: cause}
}

func NewPublicationFailed(vehicleID models.ObjectID, event models.LocationEventType, cause error) error {
	return &Error{Kind: ErrPublicationFailed, VehicleID: vehicleID, Event: event, Cause: cause}
}
