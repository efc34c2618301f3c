package ports

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// OrderNotifier records order lifecycle events for asynchronous delivery.
// Implementations are best-effort: they must never propagate failures to the
// caller, because a lost notification never invalidates the order operation
// that produced it.
type OrderNotifier interface {
	// NotifyOrderCreated records an order_created event for the buyer.
	NotifyOrderCreated(ctx context.Context, aggregate *order.Order)

	// NotifyOrderStatusChanged records the event matching the order's
	// current status (shipped, delivered, cancelled). Statuses without a
	// notification type are ignored.
	NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order)
}
