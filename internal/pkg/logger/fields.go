package logger

import (
	"time"

	"github.com/piresc/fleetlocation/internal/pkg/models"
	"go.uber.org/zap"
)

// Field keeps callers off the zap import
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

// ErrorField is Err under the name the handlers use
func ErrorField(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// VehicleID is the field every location log line is keyed by
func VehicleID(id models.ObjectID) Field {
	return zap.String("vehicle_id", id.Hex())
}

// EventType tags a log line with a location event discriminator
func EventType(t models.LocationEventType) Field {
	return zap.String("event_type", string(t))
}
