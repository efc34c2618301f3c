package order

import (
	"errors"
	"fmt"
	"strings"

	"commerce/internal/core/domain/model/kernel"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrOrderNotCancellable     = errors.New("order cannot be cancelled")
)

// InvalidTransitionError reports a disallowed status transition. Valid lists
// the targets that are currently reachable, for the caller's convenience.
type InvalidTransitionError struct {
	From  Status
	To    Status
	Valid []Status
}

func (e *InvalidTransitionError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("%s: cannot transition from %q to %q (%q is terminal)",
			ErrInvalidStatusTransition, e.From, e.To, e.From)
	}
	names := make([]string, len(e.Valid))
	for i, s := range e.Valid {
		names[i] = s.String()
	}
	return fmt.Sprintf("%s: cannot transition from %q to %q (valid targets: %s)",
		ErrInvalidStatusTransition, e.From, e.To, strings.Join(names, ", "))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// CancellationError reports that an order cannot be cancelled in its
// current status.
type CancellationError struct {
	OrderID kernel.UUID
	Status  Status
}

func (e *CancellationError) Error() string {
	return fmt.Sprintf("%s: order %s is in %q status",
		ErrOrderNotCancellable, e.OrderID, e.Status)
}

func (e *CancellationError) Unwrap() error {
	return ErrOrderNotCancellable
}
