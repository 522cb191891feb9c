package constants

// Broker destinations
const (
	// SubjectLocationEvents is the default subject/topic for location lifecycle events
	SubjectLocationEvents = "location.events"
	// StreamLocationEvents is the JetStream stream capturing SubjectLocationEvents
	StreamLocationEvents = "LOCATION_EVENTS"
	// TopicLocationEvents is the default NSQ topic
	TopicLocationEvents = "location_events"
)

// HeaderEventKey carries the partition key of a NATS message
const HeaderEventKey = "Event-Key"

// Broker drivers
const (
	BrokerNATS = "nats"
	BrokerNSQ  = "nsq"
)
