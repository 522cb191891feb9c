package health

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/fleetlocation/internal/pkg/database"
	"github.com/piresc/fleetlocation/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth pings Redis
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Ping(ctx)
}

// NATSHealthChecker checks NATS connection and JetStream health
type NATSHealthChecker struct {
	client *nats.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *nats.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

// CheckHealth verifies the connection is up and JetStream answers
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil || !n.client.IsConnected() {
		return errors.New("NATS not connected")
	}
	if _, err := n.client.GetJetStream().AccountInfo(ctx); err != nil {
		return fmt.Errorf("JetStream not available: %w", err)
	}
	return nil
}

// Pinger is implemented by clients with a synchronous liveness probe, such as the NSQ producer
type Pinger interface {
	Ping() error
}

// NSQHealthChecker checks nsqd reachability
type NSQHealthChecker struct {
	producer Pinger
}

// NewNSQHealthChecker creates a new NSQ health checker
func NewNSQHealthChecker(producer Pinger) *NSQHealthChecker {
	return &NSQHealthChecker{producer: producer}
}

// CheckHealth pings nsqd
func (n *NSQHealthChecker) CheckHealth(_ context.Context) error {
	if n.producer == nil {
		return errors.New("NSQ producer not configured")
	}
	return n.producer.Ping()
}
