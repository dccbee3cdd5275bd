// Package order contains the Order aggregate and its supporting types for the
// food ordering lifecycle.
//
// The package implements the workflow an order goes through from placement at
// the counter to pickup by the customer:
//
//   - Order: the aggregate root. Holds the order lines, the lifecycle status,
//     and the queue of domain events raised by mutations.
//   - Item: an immutable value object for one order line (product, quantity,
//     unit price captured at ordering time).
//   - Status: the lifecycle state machine. A single successor table defines
//     which transitions are legal; both transition validation and the
//     "what can happen next" query read from it.
//   - CancelledBy: who cancelled an order, the customer or counter staff.
//   - CreatedEvent, StatusChangedEvent, CancelledEvent: domain events queued
//     by the aggregate and published by command handlers after persistence.
//
// All types use constructor functions that validate invariants. Direct struct
// initialization is prevented through private fields and construction guards.
//
// Example of the happy path:
//
//	item, _ := order.NewItem("i1", "p1", "Beef Noodles", 2, 50)
//	o, _ := order.NewOrder(kernel.NewUUID(), "U1001", []order.Item{item}, "")
//
//	_ = o.Confirm()
//	_ = o.StartPreparation()
//	_ = o.MarkReadyForPickup()
//	_ = o.Complete()
package order
