// Package eventbus provides the in-process implementation of the event
// publisher port. Delivery is synchronous and at-most-once: handlers run
// inside the publish call, after the surrounding transaction has committed,
// and nothing is persisted or retried.
package eventbus

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// InProcessEventPublisher dispatches domain events to handlers registered by
// event type. Subscribe during composition; Publish from command handlers.
type InProcessEventPublisher struct {
	handlers map[string][]ports.EventHandler
	logger   *slog.Logger

	eventsPublished *prometheus.CounterVec
	handlerFailures *prometheus.CounterVec
}

// NewInProcessEventPublisher creates a publisher. Metrics are registered on
// the given registerer under the foodorder_events namespace.
func NewInProcessEventPublisher(logger *slog.Logger, registerer prometheus.Registerer) *InProcessEventPublisher {
	eventsPublished := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodorder_events_published_total",
		Help: "Number of domain events published, by event type.",
	}, []string{"event_type"})

	handlerFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "foodorder_event_handler_failures_total",
		Help: "Number of event handler errors, by event type.",
	}, []string{"event_type"})

	registerer.MustRegister(eventsPublished, handlerFailures)

	return &InProcessEventPublisher{
		handlers:        make(map[string][]ports.EventHandler),
		logger:          logger.With("component", "event_publisher"),
		eventsPublished: eventsPublished,
		handlerFailures: handlerFailures,
	}
}

// Subscribe registers a handler for an event type. Not safe to call
// concurrently with Publish.
func (p *InProcessEventPublisher) Subscribe(eventType string, handler ports.EventHandler) {
	p.handlers[eventType] = append(p.handlers[eventType], handler)
}

// Publish delivers the event to every handler registered for its type.
// A failing handler is logged and counted; the remaining handlers still run.
func (p *InProcessEventPublisher) Publish(ctx context.Context, event kernel.DomainEvent) {
	eventType := event.EventType()
	p.eventsPublished.WithLabelValues(eventType).Inc()

	p.logger.InfoContext(ctx, "domain event published",
		"event_type", eventType,
		"aggregate_id", event.AggregateID(),
		"occurred_on", event.OccurredOn(),
	)

	for _, handler := range p.handlers[eventType] {
		if err := handler(ctx, event); err != nil {
			p.handlerFailures.WithLabelValues(eventType).Inc()
			p.logger.ErrorContext(ctx, "event handler failed",
				"event_type", eventType,
				"aggregate_id", event.AggregateID(),
				"error", err,
			)
		}
	}
}
