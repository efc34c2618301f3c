package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrRestockProductsCommandIsNotConstructed = errors.New(
	"RestockProductsCommand must be created via NewRestockProductsCommand constructor",
)

// RestockLine is a requested (product, quantity) stock increment.
type RestockLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// RestockProductsCommand represents a bulk stock replenishment request.
// All lines are applied atomically; an unknown product aborts the whole
// batch.
type RestockProductsCommand struct { //nolint:recvcheck //using for validation
	lines []RestockLine

	guard guard.ConstructorGuard
}

// NewRestockProductsCommand creates a command to replenish stock for a
// batch of products. Requires at least one line with a positive quantity.
func NewRestockProductsCommand(lines []RestockLine) (RestockProductsCommand, error) {
	restockCommand := RestockProductsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if len(lines) == 0 {
		return RestockProductsCommand{}, errs.NewValueIsRequiredError("lines")
	}

	owned := make([]RestockLine, len(lines))
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return RestockProductsCommand{}, err
		}
		if line.Quantity <= 0 {
			return RestockProductsCommand{}, errs.NewValueIsInvalidError("quantity")
		}
		owned[i] = line
	}
	restockCommand.lines = owned

	return restockCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestockProductsCommandIsNotConstructed if validation fails.
func (c RestockProductsCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductsCommandIsNotConstructed)
}

// Lines returns the requested stock increments.
func (c RestockProductsCommand) Lines() []RestockLine {
	lines := make([]RestockLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}
