package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/piresc/fleetlocation/internal/pkg/constants"
	"github.com/piresc/fleetlocation/internal/pkg/database"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/piresc/fleetlocation/services/location"
)

// Redis geo indexes only accept latitudes within this bound
const maxGeoLatitude = 85.05112878

type locationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository stores each location update as a JSON document under its vehicle id.
// A set indexes stored ids and a geo set tracks last known positions.
func NewLocationRepository(redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
	}
}

func documentKey(vehicleID models.ObjectID) string {
	return fmt.Sprintf(constants.KeyLocationUpdate, vehicleID.Hex())
}

// FindByID loads the location update of a vehicle
func (r *locationRepo) FindByID(ctx context.Context, vehicleID models.ObjectID) (*models.LocationUpdate, error) {
	data, err := r.redisClient.Get(ctx, documentKey(vehicleID))
	if errors.Is(err, redis.Nil) {
		return nil, location.ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location update: %w", err)
	}

	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return nil, fmt.Errorf("failed to decode location update: %w", err)
	}
	return &update, nil
}

// Save writes the document, its index entry and its geo position in one MULTI/EXEC
func (r *locationRepo) Save(ctx context.Context, update *models.LocationUpdate) (*models.LocationUpdate, error) {
	if update == nil || update.VehicleID.IsZero() {
		return nil, errors.New("location update without vehicle id")
	}

	data, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to encode location update: %w", err)
	}

	member := update.VehicleID.Hex()
	err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, documentKey(update.VehicleID), data, 0)
		pipe.SAdd(ctx, constants.KeyLocationIndex, member)
		if lat := update.Location.Latitude; lat >= -maxGeoLatitude && lat <= maxGeoLatitude {
			pipe.GeoAdd(ctx, constants.KeyLocationGeo, &redis.GeoLocation{
				Name:      member,
				Longitude: update.Location.Longitude,
				Latitude:  lat,
			})
		} else {
			pipe.ZRem(ctx, constants.KeyLocationGeo, member)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store location update: %w", err)
	}

	saved := *update
	saved.Events = append([]models.Event(nil), update.Events...)
	return &saved, nil
}

// DeleteByID removes the document and its index entries
func (r *locationRepo) DeleteByID(ctx context.Context, vehicleID models.ObjectID) error {
	member := vehicleID.Hex()
	err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, documentKey(vehicleID))
		pipe.SRem(ctx, constants.KeyLocationIndex, member)
		pipe.ZRem(ctx, constants.KeyLocationGeo, member)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete location update: %w", err)
	}
	return nil
}

// DeleteAll removes every stored location update
func (r *locationRepo) DeleteAll(ctx context.Context) (int64, error) {
	members, err := r.redisClient.SMembers(ctx, constants.KeyLocationIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to list location updates: %w", err)
	}

	keys := make([]string, 0, len(members)+2)
	for _, m := range members {
		keys = append(keys, fmt.Sprintf(constants.KeyLocationUpdate, m))
	}

	var removed *redis.IntCmd
	err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(keys) > 0 {
			removed = pipe.Del(ctx, keys...)
		}
		pipe.Del(ctx, constants.KeyLocationIndex, constants.KeyLocationGeo)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete location updates: %w", err)
	}
	if removed == nil {
		return 0, nil
	}
	return removed.Val(), nil
}
