package location

import (
	"context"

	"github.com/piresc/fleetlocation/internal/pkg/models"
)

// LocationUC orchestrates location commands: gate, persist, then emit
type LocationUC interface {
	// Create stores a location update for a vehicle the registry resolves.
	// The returned aggregate is non-nil whenever the write committed, even if the event did not go out.
	Create(ctx context.Context, update *models.LocationUpdate) (*models.LocationUpdate, error)
	// Update applies a partial command to an existing location update
	Update(ctx context.Context, vehicleID models.ObjectID, cmd *models.LocationUpdateCommand) (*models.LocationUpdate, error)
	// Delete removes the location update of a vehicle
	Delete(ctx context.Context, vehicleID models.ObjectID) error
}
