package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/piresc/fleetlocation/internal/pkg/models"
)

// EncodeLocation converts coordinates to a geohash string
func EncodeLocation(location models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash returns the center of a geohash cell
func DecodeGeohash(hash string) models.Coordinates {
	lat, lng := geohash.Decode(hash)
	return models.Coordinates{Latitude: lat, Longitude: lng}
}
