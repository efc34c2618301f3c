package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

const (
	// MaxLineQuantity caps the quantity of a single order line.
	MaxLineQuantity = 100

	// MaxShippingAddressLen caps the shipping address length.
	MaxShippingAddressLen = 500

	// MaxNotesLen caps the free-text notes length.
	MaxNotesLen = 1000
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is a requested (product, quantity) pair in an order creation
// request.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the buyer, the requested lines and optional shipping details.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	lines := []OrderLine{{ProductID: productID, Quantity: 2}}
//	cmd, err := NewCreateOrderCommand(orderID, userID, "123 Main Street", "", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, cache)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %s", placed.ID(), placed.Total())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	shippingAddress string
	notes           string
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, enforces the per-line quantity bound and the
// shipping address/notes length limits. Returns an error if any check fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	shippingAddress string,
	notes string,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setNotes(notes),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the buyer's unique identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ShippingAddress returns the optional delivery address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// Notes returns the optional free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if len(shippingAddress) > MaxShippingAddressLen {
		return errs.NewValueIsOutOfRangeError(
			"shippingAddress length", len(shippingAddress), 0, MaxShippingAddressLen)
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setNotes(notes string) error {
	if len(notes) > MaxNotesLen {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, MaxNotesLen)
	}

	c.notes = notes
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	owned := make([]OrderLine, len(lines))
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 || line.Quantity > MaxLineQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, MaxLineQuantity)
		}
		owned[i] = line
	}

	c.lines = owned
	return nil
}
