package commands_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

// stubNotifier satisfies ports.OrderNotifier and records how often it fired.
type stubNotifier struct {
	created       int
	statusChanged int
}

func (s *stubNotifier) NotifyOrderCreated(_ context.Context, _ *order.Order) {
	s.created++
}

func (s *stubNotifier) NotifyOrderStatusChanged(_ context.Context, _ *order.Order) {
	s.statusChanged++
}

// stubCatalogCache satisfies ports.CatalogCache and counts invalidations.
type stubCatalogCache struct {
	invalidations int
}

func (s *stubCatalogCache) InvalidateProductLists(_ context.Context) {
	s.invalidations++
}

func testProduct(t *testing.T, name string, priceStr string, stock int) *product.Product {
	t.Helper()
	price, err := kernel.MoneyFromString(priceStr)
	require.NoError(t, err)
	p, err := product.NewProduct(
		kernel.NewUUID(), name, "", price, stock, "electronics", time.Now().UTC())
	require.NoError(t, err)
	return p
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "buyer@example.com", "Buyer", time.Now().UTC())
	require.NoError(t, err)
	return u
}

func testOrder(t *testing.T, userID kernel.UUID, items []order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), userID, "1 Test Lane", "", items, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func testItem(t *testing.T, p *product.Product, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(p.ID(), p.Name(), qty, p.Price())
	require.NoError(t, err)
	return item
}
