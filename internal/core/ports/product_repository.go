package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product
// catalog. Stock reads performed through a transaction-bound repository
// see the transaction's own writes, which is what lets order creation
// check and decrement stock atomically.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, including stock.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by unique identifier.
	// Returns errs.ObjectNotFoundError if no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBelowStock retrieves all products whose stock is strictly below
	// the given threshold. Used by the low-stock alert scan.
	GetBelowStock(ctx context.Context, threshold int) ([]*product.Product, error)
}
