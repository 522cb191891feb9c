package command

import (
	"errors"
	"fmt"

	"github.com/piresc/fleetlocation/internal/pkg/config"
	"github.com/piresc/fleetlocation/internal/pkg/database"
	"github.com/piresc/fleetlocation/services/location"
	"github.com/piresc/fleetlocation/services/location/repository"
	"github.com/spf13/cobra"
)

var purgeConfirmed bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every stored location update",
	Long: `Removes every location update from Redis without publishing events.
Intended for test and reset environments; requires --yes.`,
	RunE: runPurge,
}

func init() {
	purgeCmd.Flags().BoolVar(&purgeConfirmed, "yes", false, "confirm the deletion")
	rootCmd.AddCommand(purgeCmd)
}

func runPurge(cmd *cobra.Command, _ []string) error {
	if !purgeConfirmed {
		return errors.New("refusing to purge without --yes")
	}

	configs := config.InitConfig(cfgPath)
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	return purge(cmd, repository.NewLocationRepository(redisClient))
}

func purge(cmd *cobra.Command, repo location.LocationRepo) error {
	removed, err := repo.DeleteAll(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d location updates\n", removed)
	return nil
}
