package location

import (
	"context"

	"github.com/piresc/fleetlocation/internal/pkg/models"
)

// LocationRepo persists location updates keyed by vehicle id
type LocationRepo interface {
	// FindByID returns ErrLocationNotFound when no record exists
	FindByID(ctx context.Context, vehicleID models.ObjectID) (*models.LocationUpdate, error)
	// Save inserts or replaces the record of update.VehicleID
	Save(ctx context.Context, update *models.LocationUpdate) (*models.LocationUpdate, error)
	DeleteByID(ctx context.Context, vehicleID models.ObjectID) error
	// DeleteAll removes every record and returns how many were removed
	DeleteAll(ctx context.Context) (int64, error)
}
