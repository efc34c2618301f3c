package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a fixed transition table:
//
//	pending    -> confirmed, cancelled
//	confirmed  -> processing, cancelled
//	processing -> shipped, cancelled
//	shipped    -> delivered
//	delivered  -> (terminal)
//	cancelled  -> (terminal)
//
// There are no self-transitions. Status is a value object; TransitionTo is
// the only operation that produces a new state and it never mutates the
// receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	Pending

	// Confirmed indicates the order has been accepted for fulfilment.
	Confirmed

	// Processing indicates the order is being picked and packed.
	Processing

	// Shipped indicates the order has left the warehouse.
	// Shipped orders can no longer be cancelled.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled and its stock restored.
	// Terminal.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// transitionTable holds the directed edges of the status state machine.
// Terminal states map to an empty set.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses the wire/database representation of a status,
// e.g. "pending". Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// String returns the lowercase name used on the wire and in the database.
func (s Status) String() string {
	if name, ok := statusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that the status is one of the defined lifecycle states.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := transitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	targets, ok := transitionTable()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether target is reachable from s in one step.
// Pure function over the transition table; this is the single place the
// table is evaluated.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidTransitions returns the set of statuses reachable from s.
// The returned slice is a copy; callers may modify it freely.
func (s Status) ValidTransitions() []Status {
	targets := transitionTable()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// TransitionTo returns the target status if the transition is allowed.
// On a disallowed transition it returns an InvalidTransitionError carrying
// the current status, the requested target, and the currently valid targets.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{
			From:  s,
			To:    target,
			Valid: s.ValidTransitions(),
		}
	}
	return target, nil
}
