// Package product provides the Product aggregate for the catalog.
// A product carries the unit price and available stock quantity that the
// order lifecycle reads and mutates: stock is decremented at order creation
// and restored on cancellation, and may never go negative.
package product

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// LowStockThreshold is the stock level below which a product is considered
// low on stock.
const LowStockThreshold = 10

// ErrProductIsNotConstructed is returned when a Product was not created
// through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// ErrInsufficientStock classifies stock shortfalls with errors.Is.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports that a requested quantity exceeds the
// available stock of a product.
type InsufficientStockError struct {
	ProductID   kernel.UUID
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %q (%s): requested %d, available %d",
		ErrInsufficientStock, e.ProductName, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is the aggregate root for a catalog entry.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int
	category    string
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a catalog entry. Name is required and the initial
// stock may not be negative.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
	now time.Time,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}

	return &Product{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		stock:         stock,
		category:      category,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
	createdAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, name, description, price, stock, category, createdAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the available quantity.
func (p *Product) Stock() int {
	return p.stock
}

// Category returns the catalog category, empty if uncategorized.
func (p *Product) Category() string {
	return p.category
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// IsLowStock reports whether the stock is below LowStockThreshold.
func (p *Product) IsLowStock() bool {
	return p.stock < LowStockThreshold
}

// DecrementStock reserves qty units for an order. If the available stock is
// insufficient it returns an InsufficientStockError and leaves the stock
// unchanged; stock never goes negative.
func (p *Product) DecrementStock(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if p.stock < qty {
		return &InsufficientStockError{
			ProductID:   p.id,
			ProductName: p.name,
			Requested:   qty,
			Available:   p.stock,
		}
	}

	p.stock -= qty
	return nil
}

// IncrementStock returns qty units to stock, e.g. on order cancellation or
// restock.
func (p *Product) IncrementStock(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	p.stock += qty
	return nil
}
