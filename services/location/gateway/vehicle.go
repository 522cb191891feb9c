package gateway

import (
	"context"
	"errors"
	"net/url"
	"strings"

	httpclient "github.com/piresc/fleetlocation/internal/pkg/http"
	"github.com/piresc/fleetlocation/internal/pkg/logger"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/piresc/fleetlocation/services/location"
)

type vehicleGW struct {
	client       *httpclient.Client
	pathTemplate string
}

// NewVehicleGW resolves vehicles with GET <base><pathTemplate>, "{id}" replaced by the vehicle id
func NewVehicleGW(client *httpclient.Client, pathTemplate string) location.VehicleGW {
	return &vehicleGW{
		client:       client,
		pathTemplate: pathTemplate,
	}
}

// ResolveVehicle folds every failure into "not resolved"; the reason is only logged
func (g *vehicleGW) ResolveVehicle(ctx context.Context, vehicleID models.ObjectID) (*models.Vehicle, bool) {
	path := strings.ReplaceAll(g.pathTemplate, "{id}", url.PathEscape(vehicleID.Hex()))

	var vehicle models.Vehicle
	err := g.client.GetJSON(ctx, path, &vehicle)
	if err == nil {
		if vehicle.VehicleID.IsZero() {
			vehicle.VehicleID = vehicleID
		}
		return &vehicle, true
	}

	reason := "registry unreachable"
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		reason = "registry rejected lookup"
		if statusErr.StatusCode == 404 {
			reason = "vehicle unknown to registry"
		}
	}
	logger.WarnCtx(ctx, "Vehicle not resolved",
		logger.VehicleID(vehicleID),
		logger.String("reason", reason),
		logger.ErrorField(err))
	return nil, false
}
