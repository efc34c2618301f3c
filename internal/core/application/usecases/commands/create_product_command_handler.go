package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/ports"
)

// CreateProductCommandHandler handles catalog product registration.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	cache      ports.CatalogCache
}

// NewCreateProductCommandHandler creates a handler for product registration.
// Requires a ProductUoWFactory for transactional persistence and a
// CatalogCache to drop cached listings that the new product invalidates.
func NewCreateProductCommandHandler(
	uowFactory ProductUoWFactory,
	cache ports.CatalogCache,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the product registration command and returns the created
// product.
func (h CreateProductCommandHandler) Handle(
	ctx context.Context,
	cmd CreateProductCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Stock(),
		cmd.Category(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.InvalidateProductLists(ctx)

	return created, nil
}
