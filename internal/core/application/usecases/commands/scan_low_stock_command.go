package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrScanLowStockCommandIsNotConstructed = errors.New(
		"ScanLowStockCommand must be created via NewScanLowStockCommand constructor",
	)
)

// ScanLowStockCommand triggers a sweep of the catalog for depleted products.
// Each product under the low-stock threshold gets a pending low_stock
// notification, unless one is already waiting for it.
//
// Example:
//
//	cmd := NewScanLowStockCommand()
//	handler := NewScanLowStockCommandHandler(uowFactory)
//
//	// Run periodically from the scheduler
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Low stock scan failed: %v", err)
//	}
type ScanLowStockCommand struct {
	guard guard.ConstructorGuard
}

// NewScanLowStockCommand creates a command to sweep the catalog for
// depleted products. This is a parameterless batch command.
func NewScanLowStockCommand() ScanLowStockCommand {
	command := ScanLowStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrScanLowStockCommandIsNotConstructed if validation fails.
func (c *ScanLowStockCommand) Validate() error {
	return c.guard.Validate(ErrScanLowStockCommandIsNotConstructed)
}
