package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/fleetlocation/internal/pkg/constants"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment.
// When APP_ENV is "local" (the default) the dotenv file at configPath is loaded first.
func InitConfig(configPath string) *models.Config {
	env := os.Getenv("APP_ENV")
	if env == "" || env == "local" {
		if configPath != "" {
			if err := godotenv.Load(configPath); err != nil {
				log.Println("error loading config from file", err)
			}
		}
	}
	return loadConfigFromEnv(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "location-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 9991)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("BROKER_DRIVER", constants.BrokerNATS)

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NATS_STREAM", constants.StreamLocationEvents)
	v.SetDefault("NATS_SUBJECT", constants.SubjectLocationEvents)
	v.SetDefault("NATS_PUBLISH_TIMEOUT", 5*time.Second)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_TOPIC", constants.TopicLocationEvents)

	v.SetDefault("VEHICLES_API_BASE_URL", "http://localhost:8081")
	v.SetDefault("VEHICLES_API_GET_BY_ID", "/vehicles/{id}")
	v.SetDefault("VEHICLES_API_KEY", "")
	v.SetDefault("VEHICLES_API_TIMEOUT", 5*time.Second)

	v.SetDefault("NEW_RELIC_LICENSE_KEY", "")
	v.SetDefault("NEW_RELIC_APP_NAME", "")
	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_FORWARD_LOGS", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
	v.SetDefault("LOG_TYPE", "console")
}

func loadConfigFromEnv(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Broker config
	configs.Broker.Driver = strings.ToLower(v.GetString("BROKER_DRIVER"))

	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NATS.Stream = v.GetString("NATS_STREAM")
	configs.NATS.Subject = v.GetString("NATS_SUBJECT")
	configs.NATS.PublishTimeout = v.GetDuration("NATS_PUBLISH_TIMEOUT")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")

	// Vehicle registry config
	configs.Vehicles.BaseURL = v.GetString("VEHICLES_API_BASE_URL")
	configs.Vehicles.GetByID = v.GetString("VEHICLES_API_GET_BY_ID")
	configs.Vehicles.APIKey = v.GetString("VEHICLES_API_KEY")
	configs.Vehicles.Timeout = v.GetDuration("VEHICLES_API_TIMEOUT")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	return configs
}
