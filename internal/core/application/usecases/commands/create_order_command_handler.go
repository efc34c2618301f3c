package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Verifies the buyer, reserves stock line by line and persists the order with
// its price snapshots in a single transaction, so a failure on any line
// leaves stock untouched.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, cache)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), userID, "456 Oak Avenue", "", lines)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// placed is pending and stock has been reserved
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	notifier   ports.OrderNotifier
	cache      ports.CatalogCache
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CheckoutUoWFactory for transactional persistence, an
// OrderNotifier for best-effort lifecycle events and a CatalogCache to
// drop listings cached with the pre-checkout stock levels.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	notifier ports.OrderNotifier,
	cache ports.CatalogCache,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		cache:      cache,
	}
}

// Handle processes the order placement command.
// Loads the buyer and every requested product, reserves stock through the
// checkout service and persists the order and the decremented stock levels
// as one atomic commit. Returns the placed order.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
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

	userRepo := uow.UserRepository()
	if _, err := userRepo.Get(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	catalog, err := loadCatalog(ctx, productRepo, cmd.Lines())
	if err != nil {
		return nil, err
	}

	lines := make([]services.PurchaseLine, len(cmd.Lines()))
	for i, line := range cmd.Lines() {
		lines[i] = services.PurchaseLine{ProductID: line.ProductID, Quantity: line.Quantity}
	}

	items, err := services.NewCheckout().Reserve(lines, catalog)
	if err != nil {
		return nil, err
	}

	for _, p := range catalog {
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.ShippingAddress(),
		cmd.Notes(),
		items,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.InvalidateProductLists(ctx)
	h.notifier.NotifyOrderCreated(ctx, placed)

	return placed, nil
}

// loadCatalog fetches each distinct requested product once. A missing
// product surfaces as the repository's not-found error and aborts the
// whole operation.
func loadCatalog(
	ctx context.Context,
	repo ports.ProductRepository,
	lines []OrderLine,
) ([]*product.Product, error) {
	seen := make(map[string]bool, len(lines))
	catalog := make([]*product.Product, 0, len(lines))

	for _, line := range lines {
		if seen[line.ProductID.String()] {
			continue
		}
		seen[line.ProductID.String()] = true

		p, err := repo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, p)
	}

	return catalog, nil
}
