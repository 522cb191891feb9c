package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/fleetlocation/internal/pkg/constants"
)

// StreamConfig is the subset of jetstream.StreamConfig the service manages
type StreamConfig struct {
	Name       string
	Subjects   []string
	Retention  jetstream.RetentionPolicy
	Storage    jetstream.StorageType
	Replicas   int
	MaxAge     time.Duration
	MaxBytes   int64
	MaxMsgs    int64
	Discard    jetstream.DiscardPolicy
	Duplicates time.Duration
}

// JetStream converts to the client library's stream config
func (s StreamConfig) JetStream() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:       s.Name,
		Subjects:   s.Subjects,
		Retention:  s.Retention,
		Storage:    s.Storage,
		Replicas:   s.Replicas,
		MaxAge:     s.MaxAge,
		MaxBytes:   s.MaxBytes,
		MaxMsgs:    s.MaxMsgs,
		Discard:    s.Discard,
		Duplicates: s.Duplicates,
	}
}

// StreamConfigBuilder helps build stream configurations
type StreamConfigBuilder struct {
	config StreamConfig
}

// NewStreamConfigBuilder starts from file-backed, limits-retained, single-replica defaults
func NewStreamConfigBuilder(name string) *StreamConfigBuilder {
	return &StreamConfigBuilder{
		config: StreamConfig{
			Name:       name,
			Retention:  jetstream.LimitsPolicy,
			Storage:    jetstream.FileStorage,
			Replicas:   1,
			MaxAge:     24 * time.Hour,
			MaxBytes:   100 * 1024 * 1024,
			MaxMsgs:    1000000,
			Discard:    jetstream.DiscardOld,
			Duplicates: 2 * time.Minute,
		},
	}
}

func (b *StreamConfigBuilder) WithSubjects(subjects ...string) *StreamConfigBuilder {
	b.config.Subjects = subjects
	return b
}

func (b *StreamConfigBuilder) WithRetention(retention jetstream.RetentionPolicy) *StreamConfigBuilder {
	b.config.Retention = retention
	return b
}

func (b *StreamConfigBuilder) WithStorage(storage jetstream.StorageType) *StreamConfigBuilder {
	b.config.Storage = storage
	return b
}

func (b *StreamConfigBuilder) WithMaxAge(maxAge time.Duration) *StreamConfigBuilder {
	b.config.MaxAge = maxAge
	return b
}

func (b *StreamConfigBuilder) WithDuplicateWindow(window time.Duration) *StreamConfigBuilder {
	b.config.Duplicates = window
	return b
}

// Build returns the stream configuration
func (b *StreamConfigBuilder) Build() StreamConfig {
	return b.config
}

// LocationEventsStream is the stream capturing location lifecycle events.
// Empty arguments fall back to the defaults in constants.
func LocationEventsStream(name, subject string) StreamConfig {
	if name == "" {
		name = constants.StreamLocationEvents
	}
	if subject == "" {
		subject = constants.SubjectLocationEvents
	}
	return NewStreamConfigBuilder(name).
		WithSubjects(subject).
		WithRetention(jetstream.LimitsPolicy).
		WithStorage(jetstream.FileStorage).
		WithMaxAge(7 * 24 * time.Hour).
		Build()
}
