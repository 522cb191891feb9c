// Package command holds the location-service CLI.
//
//	./location [-c config/location.env]              # serve the HTTP API
//	./location purge --yes [-c config/location.env]  # drop every stored location update
package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "location-service"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "location",
	Short: "Fleet location update service",
	Long: `Accepts vehicle location updates over HTTP, checks each new vehicle
against the vehicle registry, stores the last known location in Redis and
publishes LOCATION_CREATED, LOCATION_UPDATED and LOCATION_DELETED events
to NATS JetStream or NSQ.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "dotenv file loaded when APP_ENV is local")
}

// fixConfigPath falls back to CONFIG_FILE, then to the repository default
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "config/location.env"
	}
}
