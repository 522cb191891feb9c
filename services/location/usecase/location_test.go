package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/piresc/fleetlocation/services/location"
	"github.com/piresc/fleetlocation/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	vehicleV1 = models.MustParseObjectID("507f1f77bcf86cd799439011")
	routeR1   = models.MustParseObjectID("507f191e810c19729de860ea")
)

type testDeps struct {
	repo       *mocks.MockLocationRepo
	vehicleGW  *mocks.MockVehicleGW
	locationGW *mocks.MockLocationGW
	uc         location.LocationUC
}

func newTestDeps(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		repo:       mocks.NewMockLocationRepo(ctrl),
		vehicleGW:  mocks.NewMockVehicleGW(ctrl),
		locationGW: mocks.NewMockLocationGW(ctrl),
	}
	d.uc = NewLocationUC(d.repo, d.vehicleGW, d.locationGW)
	return d
}

func newUpdate() *models.LocationUpdate {
	return &models.LocationUpdate{
		VehicleID:      vehicleV1,
		RouteID:        routeR1,
		Timestamp:      time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Location:       models.Coordinates{Latitude: 40.4168, Longitude: -3.7038},
		Speed:          50.0,
		Direction:      models.DirectionNorth,
		PassengerCount: 12,
		Status:         models.StatusOnRoute,
		Events: []models.Event{{
			EventID: "evt-1",
			Type:    models.EventStopArrival,
			StopID:  "stop-7",
		}},
	}
}

// echoSave stores a copy of the update the way the repository does
func echoSave(_ context.Context, update *models.LocationUpdate) (*models.LocationUpdate, error) {
	saved := *update
	saved.Events = append([]models.Event(nil), update.Events...)
	return &saved, nil
}

func TestCreate_Success(t *testing.T) {
	// Arrange
	d := newTestDeps(t)
	update := newUpdate()

	d.vehicleGW.EXPECT().
		ResolveVehicle(gomock.Any(), vehicleV1).
		Return(&models.Vehicle{VehicleID: vehicleV1, CurrentStatus: models.VehicleInService}, true)
	d.repo.EXPECT().Save(gomock.Any(), update).DoAndReturn(echoSave)
	d.locationGW.EXPECT().
		PublishLocationCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *models.LocationUpdate) error {
			assert.Equal(t, vehicleV1, saved.VehicleID)
			assert.Equal(t, routeR1, saved.RouteID)
			return nil
		})

	// Act
	result, err := d.uc.Create(context.Background(), update)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, update, result)
	assert.Equal(t, 50.0, result.Speed)
	assert.Equal(t, models.DirectionNorth, result.Direction)
}

func TestCreate_VehicleNotResolved(t *testing.T) {
	d := newTestDeps(t)

	// no store or broker expectation: any call fails the test
	d.vehicleGW.EXPECT().ResolveVehicle(gomock.Any(), vehicleV1).Return(nil, false)

	result, err := d.uc.Create(context.Background(), newUpdate())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, location.ErrVehicleNotFound)
	assert.Contains(t, err.Error(), vehicleV1.Hex())
}

func TestCreate_SaveFails(t *testing.T) {
	d := newTestDeps(t)
	storeErr := errors.New("redis: connection refused")

	d.vehicleGW.EXPECT().ResolveVehicle(gomock.Any(), vehicleV1).Return(&models.Vehicle{VehicleID: vehicleV1}, true)
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	result, err := d.uc.Create(context.Background(), newUpdate())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, location.ErrLocationSaveFailed)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, location.ErrPublicationFailed)
}

func TestCreate_PublishFailsKeepsWrite(t *testing.T) {
	d := newTestDeps(t)
	brokerErr := errors.New("nats: timeout")

	d.vehicleGW.EXPECT().ResolveVehicle(gomock.Any(), vehicleV1).Return(&models.Vehicle{VehicleID: vehicleV1}, true)
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
	d.locationGW.EXPECT().PublishLocationCreated(gomock.Any(), gomock.Any()).Return(brokerErr)

	result, err := d.uc.Create(context.Background(), newUpdate())

	require.NotNil(t, result)
	assert.Equal(t, vehicleV1, result.VehicleID)
	assert.ErrorIs(t, err, location.ErrPublicationFailed)
	assert.ErrorIs(t, err, brokerErr)
	assert.NotErrorIs(t, err, location.ErrLocationSaveFailed)

	var locErr *location.Error
	require.True(t, errors.As(err, &locErr))
	assert.Equal(t, models.LocationCreated, locErr.Event)
}

func TestCreate_InvalidCommand(t *testing.T) {
	d := newTestDeps(t)

	_, err := d.uc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, location.ErrInvalidCommand)

	_, err = d.uc.Create(context.Background(), &models.LocationUpdate{RouteID: routeR1})
	assert.ErrorIs(t, err, location.ErrInvalidCommand)
}

func TestUpdate_SpeedOnly(t *testing.T) {
	// Arrange
	d := newTestDeps(t)
	stored := newUpdate()
	speed := 60.0

	d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).Return(stored, nil)
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
	d.locationGW.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := d.uc.Update(context.Background(), vehicleV1, &models.LocationUpdateCommand{Speed: &speed})

	// Assert
	require.NoError(t, err)
	expected := newUpdate()
	expected.Speed = 60.0
	assert.Equal(t, expected, result)
	assert.Equal(t, routeR1, result.RouteID)
	assert.Equal(t, models.DirectionNorth, result.Direction)
	assert.Equal(t, vehicleV1, result.VehicleID)
}

func TestUpdate_NotFound(t *testing.T) {
	d := newTestDeps(t)
	speed := 60.0

	d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).Return(nil, location.ErrLocationNotFound)

	result, err := d.uc.Update(context.Background(), vehicleV1, &models.LocationUpdateCommand{Speed: &speed})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, location.ErrLocationNotFound)
}

func TestUpdate_LookupFails(t *testing.T) {
	d := newTestDeps(t)
	storeErr := errors.New("redis: i/o timeout")

	d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).Return(nil, storeErr)

	_, err := d.uc.Update(context.Background(), vehicleV1, &models.LocationUpdateCommand{})

	assert.ErrorIs(t, err, location.ErrLocationSaveFailed)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, location.ErrLocationNotFound)
}

func TestUpdate_SaveFails(t *testing.T) {
	d := newTestDeps(t)
	storeErr := errors.New("redis: connection refused")

	d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).Return(newUpdate(), nil)
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	result, err := d.uc.Update(context.Background(), vehicleV1, &models.LocationUpdateCommand{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, location.ErrLocationSaveFailed)
	assert.ErrorIs(t, err, storeErr)
}

func TestUpdate_PublishFails(t *testing.T) {
	d := newTestDeps(t)
	status := models.StatusDelayed

	d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).Return(newUpdate(), nil)
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave)
	d.locationGW.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(errors.New("no responders"))

	result, err := d.uc.Update(context.Background(), vehicleV1, &models.LocationUpdateCommand{Status: &status})

	require.NotNil(t, result)
	assert.Equal(t, models.StatusDelayed, result.Status)
	assert.ErrorIs(t, err, location.ErrPublicationFailed)
}

func TestUpdate_Idempotent(t *testing.T) {
	d := newTestDeps(t)

	// the mocked store keeps the last saved state
	state := newUpdate()
	d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).
		DoAndReturn(func(_ context.Context, _ models.ObjectID) (*models.LocationUpdate, error) {
			found := *state
			found.Events = append([]models.Event(nil), state.Events...)
			return &found, nil
		}).Times(2)
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, update *models.LocationUpdate) (*models.LocationUpdate, error) {
			saved, err := echoSave(ctx, update)
			state = saved
			return saved, err
		}).Times(2)
	d.locationGW.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	speed := 35.5
	direction := models.DirectionSouthWest
	cmd := &models.LocationUpdateCommand{
		Speed:     &speed,
		Direction: &direction,
		Events:    []models.Event{{EventID: "evt-2", Type: models.EventDelay}},
	}

	first, err := d.uc.Update(context.Background(), vehicleV1, cmd)
	require.NoError(t, err)
	second, err := d.uc.Update(context.Background(), vehicleV1, cmd)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 35.5, second.Speed)
	require.Len(t, second.Events, 1)
	assert.Equal(t, "evt-2", second.Events[0].EventID)
}

func TestDelete_Twice(t *testing.T) {
	d := newTestDeps(t)

	gomock.InOrder(
		d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).Return(newUpdate(), nil),
		d.repo.EXPECT().DeleteByID(gomock.Any(), vehicleV1).Return(nil),
		d.locationGW.EXPECT().PublishLocationDeleted(gomock.Any(), vehicleV1).Return(nil),
		d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).Return(nil, location.ErrLocationNotFound),
	)

	require.NoError(t, d.uc.Delete(context.Background(), vehicleV1))

	err := d.uc.Delete(context.Background(), vehicleV1)
	assert.ErrorIs(t, err, location.ErrLocationNotFound)
}

func TestDelete_DeleteFails(t *testing.T) {
	d := newTestDeps(t)
	storeErr := errors.New("redis: connection refused")

	d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).Return(newUpdate(), nil)
	d.repo.EXPECT().DeleteByID(gomock.Any(), vehicleV1).Return(storeErr)

	err := d.uc.Delete(context.Background(), vehicleV1)

	assert.ErrorIs(t, err, location.ErrLocationSaveFailed)
	assert.ErrorIs(t, err, storeErr)
}

func TestDelete_PublishFails(t *testing.T) {
	d := newTestDeps(t)

	d.repo.EXPECT().FindByID(gomock.Any(), vehicleV1).Return(newUpdate(), nil)
	d.repo.EXPECT().DeleteByID(gomock.Any(), vehicleV1).Return(nil)
	d.locationGW.EXPECT().PublishLocationDeleted(gomock.Any(), vehicleV1).Return(errors.New("nats: timeout"))

	err := d.uc.Delete(context.Background(), vehicleV1)

	assert.ErrorIs(t, err, location.ErrPublicationFailed)
}

func TestDelete_ZeroID(t *testing.T) {
	d := newTestDeps(t)

	assert.ErrorIs(t, d.uc.Delete(context.Background(), models.NilObjectID), location.ErrInvalidCommand)
}
