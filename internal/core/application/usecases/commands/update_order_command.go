package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to change an order's status,
// shipping address or notes. Each field is independently optional; a nil
// field means "leave unchanged". At least one field must be provided.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	status          *order.Status
	shippingAddress *string
	notes           *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// Validates the order ID, the target status (when provided) and the
// address/notes length limits. Requires at least one field to change.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	status *order.Status,
	shippingAddress *string,
	notes *string,
) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if status == nil && shippingAddress == nil && notes == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("status, shippingAddress or notes")
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setStatus(status),
		updateCommand.setShippingAddress(shippingAddress),
		updateCommand.setNotes(notes),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status, or nil when the status is unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// ShippingAddress returns the new address, or nil when unchanged.
func (c UpdateOrderCommand) ShippingAddress() *string {
	return c.shippingAddress
}

// Notes returns the new notes, or nil when unchanged.
func (c UpdateOrderCommand) Notes() *string {
	return c.notes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setShippingAddress(shippingAddress *string) error {
	if shippingAddress == nil {
		return nil
	}
	if len(*shippingAddress) > MaxShippingAddressLen {
		return errs.NewValueIsOutOfRangeError(
			"shippingAddress length", len(*shippingAddress), 0, MaxShippingAddressLen)
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *UpdateOrderCommand) setNotes(notes *string) error {
	if notes == nil {
		return nil
	}
	if len(*notes) > MaxNotesLen {
		return errs.NewValueIsOutOfRangeError("notes length", len(*notes), 0, MaxNotesLen)
	}

	c.notes = notes
	return nil
}
