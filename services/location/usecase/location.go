package usecase

import (
	"context"
	"errors"

	"github.com/piresc/fleetlocation/internal/pkg/logger"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	nrpkg "github.com/piresc/fleetlocation/internal/pkg/newrelic"
	"github.com/piresc/fleetlocation/services/location"
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	repo       location.LocationRepo
	vehicleGW  location.VehicleGW
	locationGW location.LocationGW
}

// NewLocationUC creates a new location use case
func NewLocationUC(repo location.LocationRepo, vehicleGW location.VehicleGW, locationGW location.LocationGW) location.LocationUC {
	return &LocationUC{
		repo:       repo,
		vehicleGW:  vehicleGW,
		locationGW: locationGW,
	}
}

// Create gates the vehicle against the registry, stores the update as given and emits LOCATION_CREATED.
// An existing record of the same vehicle is replaced.
func (uc *LocationUC) Create(ctx context.Context, update *models.LocationUpdate) (*models.LocationUpdate, error) {
	if update == nil || update.VehicleID.IsZero() {
		return nil, location.ErrInvalidCommand
	}
	vehicleID := update.VehicleID

	if _, ok := uc.vehicleGW.ResolveVehicle(ctx, vehicleID); !ok {
		logger.WarnCtx(ctx, "Rejected location update for unresolved vehicle",
			logger.VehicleID(vehicleID),
			logger.String("route_id", update.RouteID.Hex()))
		return nil, location.NewVehicleNotFound(vehicleID)
	}

	saved, err := nrpkg.WithSegment(ctx, "LocationRepo.Save", func() (*models.LocationUpdate, error) {
		return uc.repo.Save(ctx, update)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to save location update",
			logger.VehicleID(vehicleID),
			logger.ErrorField(err))
		return nil, location.NewLocationSaveFailed(vehicleID, err)
	}

	if err := uc.locationGW.PublishLocationCreated(ctx, saved); err != nil {
		return saved, uc.publicationFailed(ctx, vehicleID, models.LocationCreated, err)
	}

	logger.InfoCtx(ctx, "Location update created",
		logger.VehicleID(vehicleID),
		logger.String("route_id", saved.RouteID.Hex()))
	return saved, nil
}

// Update merges cmd onto the stored update of vehicleID, stores it and emits LOCATION_UPDATED
func (uc *LocationUC) Update(ctx context.Context, vehicleID models.ObjectID, cmd *models.LocationUpdateCommand) (*models.LocationUpdate, error) {
	if cmd == nil || vehicleID.IsZero() {
		return nil, location.ErrInvalidCommand
	}

	current, err := uc.find(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	ApplyCommand(cmd, current)

	saved, err := nrpkg.WithSegment(ctx, "LocationRepo.Save", func() (*models.LocationUpdate, error) {
		return uc.repo.Save(ctx, current)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to save location update",
			logger.VehicleID(vehicleID),
			logger.ErrorField(err))
		return nil, location.NewLocationSaveFailed(vehicleID, err)
	}

	if err := uc.locationGW.PublishLocationUpdated(ctx, saved); err != nil {
		return saved, uc.publicationFailed(ctx, vehicleID, models.LocationUpdated, err)
	}

	logger.InfoCtx(ctx, "Location update updated", logger.VehicleID(vehicleID))
	return saved, nil
}

// Delete removes the stored update of vehicleID and emits LOCATION_DELETED
func (uc *LocationUC) Delete(ctx context.Context, vehicleID models.ObjectID) error {
	if vehicleID.IsZero() {
		return location.ErrInvalidCommand
	}

	if _, err := uc.find(ctx, vehicleID); err != nil {
		return err
	}

	_, err := nrpkg.WithSegment(ctx, "LocationRepo.DeleteByID", func() (struct{}, error) {
		return struct{}{}, uc.repo.DeleteByID(ctx, vehicleID)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to delete location update",
			logger.VehicleID(vehicleID),
			logger.ErrorField(err))
		return location.NewLocationSaveFailed(vehicleID, err)
	}

	if err := uc.locationGW.PublishLocationDeleted(ctx, vehicleID); err != nil {
		return uc.publicationFailed(ctx, vehicleID, models.LocationDeleted, err)
	}

	logger.InfoCtx(ctx, "Location update deleted", logger.VehicleID(vehicleID))
	return nil
}

// find maps a missing record to LocationNotFound and any other store failure to LocationSaveFailed
func (uc *LocationUC) find(ctx context.Context, vehicleID models.ObjectID) (*models.LocationUpdate, error) {
	current, err := nrpkg.WithSegment(ctx, "LocationRepo.FindByID", func() (*models.LocationUpdate, error) {
		return uc.repo.FindByID(ctx, vehicleID)
	})
	if errors.Is(err, location.ErrLocationNotFound) || (err == nil && current == nil) {
		return nil, location.NewLocationNotFound(vehicleID)
	}
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to load location update",
			logger.VehicleID(vehicleID),
			logger.ErrorField(err))
		return nil, location.NewLocationSaveFailed(vehicleID, err)
	}
	return current, nil
}

// publicationFailed reports a committed change whose event was not acknowledged.
// The change is kept; consumers are out of sync until reconciled.
func (uc *LocationUC) publicationFailed(ctx context.Context, vehicleID models.ObjectID, event models.LocationEventType, cause error) error {
	logger.ErrorCtx(ctx, "Location event not published after commit",
		logger.VehicleID(vehicleID),
		logger.EventType(event),
		logger.ErrorField(cause))
	return location.NewPublicationFailed(vehicleID, event, cause)
}
