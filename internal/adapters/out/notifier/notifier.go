// Package notifier records order lifecycle notifications for later dispatch.
// Notifications are written to the notifications store in their own
// transaction, outside the order operation that produced them, so a failed
// write never invalidates the order change.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// OrderNotifier persists order event notifications in pending status.
// A background dispatcher later pushes them to the message broker.
// Implements the ports.OrderNotifier interface.
type OrderNotifier struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewOrderNotifier creates a notifier backed by the notifications store.
func NewOrderNotifier(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *OrderNotifier {
	return &OrderNotifier{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// NotifyOrderCreated records an order_created notification for the buyer.
func (n *OrderNotifier) NotifyOrderCreated(ctx context.Context, aggregate *order.Order) {
	message := fmt.Sprintf("your order %s has been placed, total %s", aggregate.ID(), aggregate.Total())
	n.record(ctx, notification.TypeOrderCreated, aggregate, message)
}

// NotifyOrderStatusChanged records the notification matching the order's
// current status. Statuses without a notification type are ignored.
func (n *OrderNotifier) NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) {
	kind, ok := statusNotificationType(aggregate.Status())
	if !ok {
		return
	}

	message := fmt.Sprintf("your order %s is now %s", aggregate.ID(), aggregate.Status())
	n.record(ctx, kind, aggregate, message)
}

func (n *OrderNotifier) record(
	ctx context.Context,
	kind notification.Type,
	aggregate *order.Order,
	message string,
) {
	record, err := notification.NewNotification(
		kernel.NewUUID(),
		kind,
		aggregate.UserID(),
		message,
		aggregate.ID(),
		time.Now().UTC(),
	)
	if err != nil {
		n.logger.Warn("failed to build order notification",
			"order_id", aggregate.ID(), "type", kind, "error", err)
		return
	}

	uow := n.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		n.logger.Warn("failed to begin notification transaction",
			"order_id", aggregate.ID(), "type", kind, "error", err)
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, record); err != nil {
		n.logger.Warn("failed to record order notification",
			"order_id", aggregate.ID(), "type", kind, "error", err)
		return
	}

	if err = uow.Commit(ctx); err != nil {
		n.logger.Warn("failed to commit order notification",
			"order_id", aggregate.ID(), "type", kind, "error", err)
	}
}

// statusNotificationType maps order statuses to their notification types.
func statusNotificationType(status order.Status) (notification.Type, bool) {
	switch status {
	case order.Shipped:
		return notification.TypeOrderShipped, true
	case order.Delivered:
		return notification.TypeOrderDelivered, true
	case order.Cancelled:
		return notification.TypeOrderCancelled, true
	default:
		return "", false
	}
}
