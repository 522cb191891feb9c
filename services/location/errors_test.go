package location

import (
	"errors"
	"testing"

	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestError_IsAndMessage(t *testing.T) {
	id := models.MustParseObjectID("507f1f77bcf86cd799439011")
	cause := errors.New("redis: connection refused")

	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{
			name:    "vehicle not found",
			err:     NewVehicleNotFound(id),
			kind:    ErrVehicleNotFound,
			message: "vehicle not found with id: 507f1f77bcf86cd799439011",
		},
		{
			name:    "location not found",
			err:     NewLocationNotFound(id),
			kind:    ErrLocationNotFound,
			message: "location not found with id: 507f1f77bcf86cd799439011",
		},
		{
			name:    "save failed",
			err:     NewLocationSaveFailed(id, cause),
			kind:    ErrLocationSaveFailed,
			message: "error saving location update with id: 507f1f77bcf86cd799439011: redis: connection refused",
		},
		{
			name:    "publication failed",
			err:     NewPublicationFailed(id, models.LocationUpdated, cause),
			kind:    ErrPublicationFailed,
			message: "location event not published with id: 507f1f77bcf86cd799439011 (LOCATION_UPDATED): redis: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.message, tt.err.Error())

			var locErr *Error
			assert.True(t, errors.As(tt.err, &locErr))
			assert.Equal(t, id, locErr.VehicleID)
		})
	}
}

func TestError_WrapsCause(t *testing.T) {
	id := models.NewObjectID()
	cause := errors.New("timeout")

	err := NewLocationSaveFailed(id, cause)

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrLocationNotFound)
	assert.NotErrorIs(t, NewVehicleNotFound(id), ErrLocationNotFound)
}
