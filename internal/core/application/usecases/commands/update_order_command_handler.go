package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// UpdateOrderCommandHandler handles status transitions and shipping-detail
// edits on existing orders. Status changes go through the order's state
// machine; an invalid transition aborts without mutating anything.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
// Requires an OrderUoWFactory for transactional persistence and an
// OrderNotifier for best-effort lifecycle events.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order update command.
// Loads the order, applies the requested status transition and field edits,
// and persists the result. Returns the updated order.
func (h UpdateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderCommand,
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

	now := time.Now().UTC()
	statusChanged := false

	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(*cmd.Status(), now); err != nil {
			return nil, err
		}
		statusChanged = true
	}
	if cmd.ShippingAddress() != nil {
		aggregate.SetShippingAddress(*cmd.ShippingAddress(), now)
	}
	if cmd.Notes() != nil {
		aggregate.SetNotes(*cmd.Notes(), now)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if statusChanged {
		h.notifier.NotifyOrderStatusChanged(ctx, aggregate)
	}

	return aggregate, nil
}
