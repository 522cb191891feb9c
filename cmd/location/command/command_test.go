package command

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/fleetlocation/internal/pkg/constants"
	"github.com/piresc/fleetlocation/internal/pkg/database"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/piresc/fleetlocation/services/location/mocks"
	"github.com/piresc/fleetlocation/services/location/repository"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestRunPurge_RequiresConfirmation(t *testing.T) {
	purgeConfirmed = false

	err := runPurge(purgeCmd, nil)

	assert.EqualError(t, err, "refusing to purge without --yes")
}

func TestPurge(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	repo := repository.NewLocationRepository(&database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})})
	cmd, out := newTestCommand()
	for i := 0; i < 2; i++ {
		_, err := repo.Save(cmd.Context(), &models.LocationUpdate{VehicleID: models.NewObjectID(), RouteID: models.NewObjectID()})
		require.NoError(t, err)
	}

	require.NoError(t, purge(cmd, repo))

	assert.Equal(t, "removed 2 location updates\n", out.String())
	assert.Empty(t, mr.Keys())
}

func TestPurge_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLocationRepo(ctrl)
	repo.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), assert.AnError)
	cmd, out := newTestCommand()

	err := purge(cmd, repo)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, out.String())
}

func TestNewBroker_NATS(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	s := natsserver.RunServer(&opts)
	defer s.Shutdown()

	configs := &models.Config{
		Broker: models.BrokerConfig{Driver: constants.BrokerNATS},
		NATS:   models.NATSConfig{URL: s.ClientURL(), PublishTimeout: time.Second},
	}

	b, err := newBroker(context.Background(), configs)
	require.NoError(t, err)
	defer b.close(context.Background())

	assert.Equal(t, constants.BrokerNATS, b.name)
	assert.Equal(t, constants.SubjectLocationEvents, b.topic)
	assert.NoError(t, b.checker.CheckHealth(context.Background()))
	assert.NoError(t, b.publisher.Publish(context.Background(), b.topic, "key", []byte(`{"type":"LOCATION_CREATED"}`)))
}

func TestNewBroker_Errors(t *testing.T) {
	tests := []struct {
		name    string
		configs *models.Config
	}{
		{
			name:    "unsupported driver",
			configs: &models.Config{Broker: models.BrokerConfig{Driver: "kafka"}},
		},
		{
			name: "nats unreachable",
			configs: &models.Config{
				Broker: models.BrokerConfig{Driver: constants.BrokerNATS},
				NATS:   models.NATSConfig{URL: "nats://127.0.0.1:1"},
			},
		},
		{
			name: "nsqd unreachable",
			configs: &models.Config{
				Broker: models.BrokerConfig{Driver: constants.BrokerNSQ},
				NSQ:    models.NSQConfig{Address: "127.0.0.1:1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := newBroker(context.Background(), tt.configs)
			assert.Error(t, err)
			assert.Nil(t, b)
		})
	}
}
