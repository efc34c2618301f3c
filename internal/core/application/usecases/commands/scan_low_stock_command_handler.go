package commands

import (
	"context"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/core/domain/model/product"
)

// ScanLowStockCommandHandler sweeps the catalog for products under the
// low-stock threshold and records a pending alert for each, skipping
// products that already have an undelivered alert.
type ScanLowStockCommandHandler struct {
	uowFactory AlertUoWFactory
}

// NewScanLowStockCommandHandler creates a handler for low-stock sweeps.
// Requires an AlertUoWFactory to read stock levels and record notifications
// atomically.
func NewScanLowStockCommandHandler(uowFactory AlertUoWFactory) ScanLowStockCommandHandler {
	return ScanLowStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the scan command and returns the number of alerts
// recorded.
func (h ScanLowStockCommandHandler) Handle(ctx context.Context, cmd ScanLowStockCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	notificationRepo := uow.NotificationRepository()

	depleted, err := productRepo.GetBelowStock(ctx, product.LowStockThreshold)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	recorded := 0
	for _, p := range depleted {
		pending, pendingErr := notificationRepo.HasPendingForReference(
			ctx, notification.TypeLowStock, p.ID())
		if pendingErr != nil {
			return 0, pendingErr
		}
		if pending {
			continue
		}

		alert, alertErr := notification.NewNotification(
			kernel.NewUUID(),
			notification.TypeLowStock,
			notification.SystemRecipientID(),
			fmt.Sprintf("product %q is low on stock: %d units remaining", p.Name(), p.Stock()),
			p.ID(),
			now,
		)
		if alertErr != nil {
			return 0, alertErr
		}
		if err = notificationRepo.Add(ctx, alert); err != nil {
			return 0, err
		}
		recorded++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return recorded, nil
}
