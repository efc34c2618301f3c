package commands

import (
	"context"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/ports"
)

// RestockProductsCommandHandler handles bulk stock replenishment.
// Applies every increment and records a restock notification per product in
// one transaction; an unknown product in any line aborts the whole batch.
type RestockProductsCommandHandler struct {
	uowFactory AlertUoWFactory
	cache      ports.CatalogCache
}

// NewRestockProductsCommandHandler creates a handler for bulk restocking.
// Requires an AlertUoWFactory to update stock and record notifications
// atomically, and a CatalogCache to drop listings cached with the
// pre-restock stock levels.
func NewRestockProductsCommandHandler(
	uowFactory AlertUoWFactory,
	cache ports.CatalogCache,
) RestockProductsCommandHandler {
	return RestockProductsCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the restock command and returns the updated products in
// line order.
func (h RestockProductsCommandHandler) Handle(
	ctx context.Context,
	cmd RestockProductsCommand,
) ([]*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	notificationRepo := uow.NotificationRepository()
	now := time.Now().UTC()

	updated := make([]*product.Product, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		if err = p.IncrementStock(line.Quantity); err != nil {
			return nil, err
		}
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}

		record, err := notification.NewNotification(
			kernel.NewUUID(),
			notification.TypeRestock,
			notification.SystemRecipientID(),
			fmt.Sprintf("product %q restocked by %d units, stock is now %d",
				p.Name(), line.Quantity, p.Stock()),
			p.ID(),
			now,
		)
		if err != nil {
			return nil, err
		}
		if err = notificationRepo.Add(ctx, record); err != nil {
			return nil, err
		}

		updated = append(updated, p)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.InvalidateProductLists(ctx)

	return updated, nil
}
