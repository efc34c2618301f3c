package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCancelOrderRepository struct{ mock.Mock }

func (m *MockCancelOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockCancelOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockCancelOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCancelProductRepository struct{ mock.Mock }

func (m *MockCancelProductRepository) Add(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockCancelProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockCancelProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockCancelProductRepository) GetBelowStock(_ context.Context, _ int) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCancelUoW struct{ mock.Mock }

func (m *MockCancelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCancelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCancelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCancelUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCancelUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockCancelUoWFactory struct{ mock.Mock }

func (m *MockCancelUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

func TestCancelOrderCommandHandler_Handle_RestoresStock(t *testing.T) {
	ctx := t.Context()
	laptop := testProduct(t, "Laptop", "1299.99", 3)
	items := []order.Item{testItem(t, laptop, 2)}
	require.NoError(t, laptop.DecrementStock(2)) // stock reserved at creation
	aggregate := testOrder(t, kernel.NewUUID(), items)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockCancelOrderRepository)
	productRepo := new(MockCancelProductRepository)
	uow := new(MockCancelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, laptop.ID()).Return(laptop, nil).Once(),
		productRepo.On("Update", ctx, laptop).Return(nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(stubNotifier)
	cache := new(stubCatalogCache)
	h := commands.NewCancelOrderCommandHandler(factory, notifier, cache)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Cancelled, cancelled.Status())
	assert.Equal(t, 3, laptop.Stock())
	assert.Equal(t, 1, notifier.statusChanged)
	assert.Equal(t, 1, cache.invalidations)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_SecondCancelFails(t *testing.T) {
	ctx := t.Context()
	laptop := testProduct(t, "Laptop", "1299.99", 5)
	aggregate := testOrder(t, kernel.NewUUID(), []order.Item{testItem(t, laptop, 1)})
	require.NoError(t, aggregate.Cancel(time.Now().UTC()))

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockCancelOrderRepository)
	uow := new(MockCancelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(stubNotifier)
	cache := new(stubCatalogCache)
	h := commands.NewCancelOrderCommandHandler(factory, notifier, cache)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var cancelErr *order.CancellationError
	require.ErrorAs(t, err, &cancelErr)
	assert.Equal(t, order.Cancelled, cancelErr.Status)
	assert.Equal(t, 5, laptop.Stock()) // no further stock change
	assert.Zero(t, notifier.statusChanged)
	assert.Zero(t, cache.invalidations)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_MissingProductSkipped(t *testing.T) {
	ctx := t.Context()
	laptop := testProduct(t, "Laptop", "1299.99", 5)
	vanished := testProduct(t, "Discontinued", "9.99", 5)
	items := []order.Item{testItem(t, vanished, 1), testItem(t, laptop, 2)}
	aggregate := testOrder(t, kernel.NewUUID(), items)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockCancelOrderRepository)
	productRepo := new(MockCancelProductRepository)
	uow := new(MockCancelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, vanished.ID()).
			Return(nil, errs.NewObjectNotFoundError("productId", vanished.ID().String())).Once(),
		productRepo.On("Get", ctx, laptop.ID()).Return(laptop, nil).Once(),
		productRepo.On("Update", ctx, laptop).Return(nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(stubNotifier), new(stubCatalogCache))
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Cancelled, cancelled.Status())
	assert.Equal(t, 7, laptop.Stock())
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
