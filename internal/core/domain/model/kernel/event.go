package kernel

import "time"

// DomainEvent is an immutable record of something that happened to an
// aggregate. Aggregates queue events while mutating; command handlers publish
// and drain the queue after the new state has been persisted.
//
// Every event carries the same stable envelope: when it occurred, a string
// event type used for handler dispatch, and the ID of the aggregate it
// belongs to. Event-specific payload lives on the concrete types.
type DomainEvent interface {
	// OccurredOn returns the time the event was raised.
	OccurredOn() time.Time

	// EventType returns the dispatch key, e.g. "OrderStatusChanged".
	EventType() string

	// AggregateID returns the ID of the aggregate the event belongs to.
	AggregateID() string
}
