package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancels the order through its state machine and restores every item's
// quantity to the product's stock, all in a single transaction. Items whose
// product has since left the catalog are skipped; the order's monetary
// record is independent of current catalog state.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, notifier, cache)
//	cmd, _ := NewCancelOrderCommand(orderID)
//
//	cancelled, err := handler.Handle(ctx, cmd)
//	var cancelErr *order.CancellationError
//	if errors.As(err, &cancelErr) {
//	    log.Printf("order %s is %s and cannot be cancelled", cancelErr.OrderID, cancelErr.Status)
//	}
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	notifier   ports.OrderNotifier
	cache      ports.CatalogCache
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a FulfillmentUoWFactory for coordinating the order-status change
// and the stock restorations, an OrderNotifier for lifecycle events and a
// CatalogCache to drop listings cached with the pre-restore stock levels.
func NewCancelOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	notifier ports.OrderNotifier,
	cache ports.CatalogCache,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		cache:      cache,
	}
}

// Handle processes the cancellation command.
// A second cancellation of the same order fails with
// order.CancellationError and performs no stock change.
func (h CancelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(time.Now().UTC()); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		p, getErr := productRepo.Get(ctx, item.ProductID())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			continue
		}
		if getErr != nil {
			return nil, getErr
		}

		if err = p.IncrementStock(item.Quantity()); err != nil {
			return nil, err
		}
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.InvalidateProductLists(ctx)
	h.notifier.NotifyOrderStatusChanged(ctx, aggregate)

	return aggregate, nil
}
