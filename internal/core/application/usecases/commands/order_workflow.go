package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// eventCarrier is the slice of an aggregate the publishing helper needs.
type eventCarrier interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// publishAndClear delivers the aggregate's queued events and drains the
// queue. Every command handler goes through this one helper, after a
// successful commit and never before; a handler must not publish or clear
// on its own. Delivery is at-most-once: a crash between commit and publish
// loses the events.
func publishAndClear(ctx context.Context, publisher ports.EventPublisher, carrier eventCarrier) {
	if publisher == nil {
		return
	}

	for _, event := range carrier.DomainEvents() {
		publisher.Publish(ctx, event)
	}
	carrier.ClearDomainEvents()
}

// mutateOrder runs one read-modify-write cycle against a single order:
// load inside a fresh unit of work, apply the mutation, persist, commit,
// then publish the queued events. Any error leaves the order unchanged in
// storage via the deferred rollback.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	orderID kernel.UUID,
	mutate func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishAndClear(ctx, publisher, aggregate)
	return nil
}
