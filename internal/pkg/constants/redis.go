package constants

// Redis key formats
const (
	KeyLocationUpdate = "location:vehicle:%s" // Format: location:vehicle:{vehicle_id}
	KeyLocationIndex  = "location:vehicles"   // Set of vehicle ids holding a location record
	KeyLocationGeo    = "location:geo"        // Geo set of last known vehicle positions
)

// GeohashPrecision is the character length of geohashes attached to location events
const GeohashPrecision = 9
