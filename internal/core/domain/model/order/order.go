package order

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a purchase. It exclusively owns its line
// items, holds the authoritative total, and guards the status lifecycle.
//
// Invariants:
//   - total always equals the sum of item subtotals
//   - items are set at construction and never added or removed afterwards
//   - status changes only through ChangeStatus/Cancel, which consult the
//     transition table
//   - updatedAt is refreshed on every mutation
type Order struct {
	id              kernel.UUID
	userID          kernel.UUID
	status          Status
	total           kernel.Money
	shippingAddress string
	notes           string
	createdAt       time.Time
	updatedAt       time.Time
	items           []Item

	isConstructed bool
}

// NewOrder creates an order in Pending status from the given items.
// The total is computed from the item subtotals; it is not an input.
// The item slice must be non-empty and every item properly constructed.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	shippingAddress string,
	notes string,
	items []Item,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	owned := make([]Item, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		owned[i] = item
		total = total.Add(item.Subtotal())
	}

	return &Order{
		id:              id,
		userID:          userID,
		status:          Pending,
		total:           total,
		shippingAddress: shippingAddress,
		notes:           notes,
		createdAt:       now,
		updatedAt:       now,
		items:           owned,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total must
// match the sum of the item subtotals; a mismatch means the record was
// corrupted outside the aggregate.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	status Status,
	total kernel.Money,
	shippingAddress string,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
	items []Item,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	sum := kernel.ZeroMoney()
	owned := make([]Item, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		owned[i] = item
		sum = sum.Add(item.Subtotal())
	}
	if !total.IsEqual(sum) {
		return nil, errs.NewValueIsInvalidError("total does not match the sum of item subtotals")
	}

	return &Order{
		id:              id,
		userID:          userID,
		status:          status,
		total:           total,
		shippingAddress: shippingAddress,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		items:           owned,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the owning user.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the authoritative order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// ShippingAddress returns the shipping address, empty if not set.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// Notes returns the free-text notes, empty if not set.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns a copy of the line items. The aggregate retains exclusive
// ownership of the underlying slice.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// ChangeStatus applies a status transition. On a disallowed transition it
// returns an InvalidTransitionError and leaves the order unchanged.
// This is the only path by which status may change; Cancel delegates here
// after its own guard.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel transitions the order to Cancelled. If the current status does not
// allow cancellation (shipped, delivered, or already cancelled), it returns
// a CancellationError and leaves the order unchanged, so a second cancel
// can never double-restore stock.
func (o *Order) Cancel(now time.Time) error {
	if !o.status.CanTransitionTo(Cancelled) {
		return &CancellationError{OrderID: o.id, Status: o.status}
	}

	o.status = Cancelled
	o.updatedAt = now
	return nil
}

// SetShippingAddress overwrites the shipping address and refreshes updatedAt.
// Length limits are enforced at the boundary.
func (o *Order) SetShippingAddress(address string, now time.Time) {
	o.shippingAddress = address
	o.updatedAt = now
}

// SetNotes overwrites the notes and refreshes updatedAt.
func (o *Order) SetNotes(notes string, now time.Time) {
	o.notes = notes
	o.updatedAt = now
}
