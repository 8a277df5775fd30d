package outbox

// Event is the domain event envelope written to the outbox table.
// The Kafka topic name equals EventType (production-style: event per topic).
type Event struct {
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

const (
	EventBookingCreated   = "ops.booking.created.v1"
	EventBookingCancelled = "ops.booking.cancelled.v1"
	EventBookingCompleted = "ops.booking.completed.v1"
	EventRosterUpdated    = "ops.roster.updated.v1"
)
