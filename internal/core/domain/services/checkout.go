package services

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

// PurchaseLine is a requested (product, quantity) pair for checkout.
type PurchaseLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// Checkout is a domain service that turns requested purchase lines into
// order line items backed by the catalog.
//
// For each line, in input order, it looks up the product, reserves the
// requested quantity (decrementing the product's stock), and snapshots the
// product's name and current price into an order.Item.
//
// Any failure aborts the whole pass. The caller owns atomicity: since
// products are mutated in memory and only persisted afterwards, running
// the pass inside a unit of work and discarding it on error guarantees
// that no partial reservation is ever committed.
type Checkout struct{}

// NewCheckout creates a Checkout domain service.
func NewCheckout() Checkout {
	return Checkout{}
}

// Reserve builds order items for the requested lines against the given
// catalog slice. Products are matched by ID.
//
// Returns:
//   - errs.ObjectNotFoundError when a line references a product that is
//     not in the catalog slice
//   - product.InsufficientStockError when a line's quantity exceeds the
//     product's available stock
//
// On success every matched product has had its stock decremented and the
// returned items carry the price/name snapshots, ready for order.NewOrder.
func (c Checkout) Reserve(lines []PurchaseLine, catalog []*product.Product) ([]order.Item, error) {
	byID := make(map[kernel.UUID]*product.Product, len(catalog))
	for _, p := range catalog {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", line.ProductID.String())
		}

		if err := p.DecrementStock(line.Quantity); err != nil {
			return nil, err
		}

		item, err := order.NewItem(p.ID(), p.Name(), line.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
