package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	Vehicles VehiclesConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// BrokerConfig selects the message broker used for location events
type BrokerConfig struct {
	Driver string // "nats" or "nsq"
}

// NATSConfig contains NATS JetStream configuration
type NATSConfig struct {
	URL            string
	Stream         string
	Subject        string
	PublishTimeout time.Duration
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Topic   string
}

// VehiclesConfig points at the vehicle registry
type VehiclesConfig struct {
	BaseURL string
	GetByID string // path template, "{id}" is replaced with the vehicle id
	APIKey  string
	Timeout time.Duration
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
