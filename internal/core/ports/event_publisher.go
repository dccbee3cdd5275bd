package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// EventHandler reacts to one published domain event. Handlers run
// synchronously inside the publish call; a handler error is logged by the
// publisher and does not stop delivery to the remaining handlers.
type EventHandler func(ctx context.Context, event kernel.DomainEvent) error

// EventPublisher dispatches domain events to handlers registered by event
// type. Delivery is in-process, synchronous, and at-most-once per handler;
// there is no persistence or retry. Events published after a commit but
// before a crash are lost.
type EventPublisher interface {
	// Publish delivers the event to every handler registered for its type.
	Publish(ctx context.Context, event kernel.DomainEvent)

	// Subscribe registers a handler for an event type. Not safe to call
	// concurrently with Publish; register everything during composition.
	Subscribe(eventType string, handler EventHandler)
}
