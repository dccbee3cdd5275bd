package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct kitchen workflow.
//
// State transitions:
//
//	Ordered ──> Confirmed ──> InPreparation ──> ReadyForPickup ──> Completed
//	   │            │               │
//	   └────────────┴──> Cancelled  └──> PreparationFailed
//
// Exception is a defined terminal status with no inbound edge; nothing in the
// workflow transitions into it, but persisted orders may carry it after
// manual intervention.
//
// The successor table below is the single source of truth for transition
// legality: validation and "what can happen next" queries both read from it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status when an order is first placed.
	Ordered

	// Confirmed indicates the counter has accepted the order.
	Confirmed

	// InPreparation indicates the kitchen is preparing the order.
	InPreparation

	// ReadyForPickup indicates the order is ready and waiting for the customer.
	ReadyForPickup

	// Completed indicates the customer has picked up the order. Terminal.
	Completed

	// Cancelled indicates the order was cancelled before preparation. Terminal.
	Cancelled

	// PreparationFailed indicates the kitchen could not prepare the order. Terminal.
	PreparationFailed

	// Exception is a terminal escape hatch with no inbound transition.
	Exception
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Ordered:           "Ordered",
		Confirmed:         "Confirmed",
		InPreparation:     "InPreparation",
		ReadyForPickup:    "ReadyForPickup",
		Completed:         "Completed",
		Cancelled:         "Cancelled",
		PreparationFailed: "PreparationFailed",
		Exception:         "Exception",
	}
}

// successors returns the canonical transition table: for each status, the set
// of statuses it may legally move to. Terminal statuses map to an empty set.
// Every transition check in the codebase must consult this table.
func successors() map[Status][]Status {
	return map[Status][]Status{
		Ordered:           {Confirmed, Cancelled},
		Confirmed:         {InPreparation, Cancelled},
		InPreparation:     {ReadyForPickup, PreparationFailed},
		ReadyForPickup:    {Completed},
		Completed:         {},
		Cancelled:         {},
		PreparationFailed: {},
		Exception:         {},
	}
}

// Validate checks if the Status value is one of the eight defined statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := successors()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromName resolves a status by its string name, e.g. "Confirmed".
// Unknown and unrecognized names are invalid.
func StatusFromName(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", name))
}

// CanTransition reports whether moving from s to target is legal
// according to the canonical transition table.
func (s Status) CanTransition(target Status) bool {
	for _, next := range successors()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the transition is legal, or a
// BusinessRuleError naming both statuses when it is not. The receiver is
// never modified; Status is a value.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Confirmed)
//	if err != nil {
//	    // illegal transition, aggregate stays unchanged
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransition(target) {
		return Unknown, errs.NewBusinessRuleErrorWithCause(
			"illegal status transition",
			fmt.Errorf("cannot transition from %s to %s", s, target),
		)
	}

	return target, nil
}

// AvailableTransitions returns the statuses the order may move to next.
// Terminal statuses return an empty slice.
func (s Status) AvailableTransitions() []Status {
	next := successors()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(successors()[s]) == 0
}

// IsCancellable reports whether an order in this status may still be
// cancelled. Only Ordered and Confirmed orders can be.
func (s Status) IsCancellable() bool {
	return s == Ordered || s == Confirmed
}
