package commands_test

import (
	"context"
	"errors"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUpdateOrderRepository struct{ mock.Mock }

func (m *MockUpdateOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockUpdateOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockUpdateOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUpdateOrderUoW struct{ mock.Mock }

func (m *MockUpdateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUpdateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUpdateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUpdateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUpdateOrderUoWFactory struct{ mock.Mock }

func (m *MockUpdateOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestUpdateOrderCommandHandler_Handle_StatusTransition(t *testing.T) {
	ctx := t.Context()
	laptop := testProduct(t, "Laptop", "1299.99", 10)
	aggregate := testOrder(t, kernel.NewUUID(), []order.Item{testItem(t, laptop, 1)})

	status := order.Confirmed
	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), &status, nil, nil)
	require.NoError(t, err)

	repo := new(MockUpdateOrderRepository)
	uow := new(MockUpdateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUpdateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(stubNotifier)
	h := commands.NewUpdateOrderCommandHandler(factory, notifier)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, updated.Status())
	assert.Equal(t, 1, notifier.statusChanged)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	laptop := testProduct(t, "Laptop", "1299.99", 10)
	aggregate := testOrder(t, kernel.NewUUID(), []order.Item{testItem(t, laptop, 1)})

	status := order.Shipped // pending cannot go straight to shipped
	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), &status, nil, nil)
	require.NoError(t, err)

	repo := new(MockUpdateOrderRepository)
	uow := new(MockUpdateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUpdateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(stubNotifier)
	h := commands.NewUpdateOrderCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Pending, transitionErr.From)
	assert.Equal(t, order.Shipped, transitionErr.To)
	assert.ElementsMatch(t, []order.Status{order.Confirmed, order.Cancelled}, transitionErr.Valid)

	assert.Equal(t, order.Pending, aggregate.Status())
	assert.Zero(t, notifier.statusChanged)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_AddressAndNotesOnly(t *testing.T) {
	ctx := t.Context()
	laptop := testProduct(t, "Laptop", "1299.99", 10)
	aggregate := testOrder(t, kernel.NewUUID(), []order.Item{testItem(t, laptop, 2)})
	totalBefore := aggregate.Total()

	address := "9 New Street"
	notes := "ring twice"
	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), nil, &address, &notes)
	require.NoError(t, err)

	repo := new(MockUpdateOrderRepository)
	uow := new(MockUpdateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUpdateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(stubNotifier)
	h := commands.NewUpdateOrderCommandHandler(factory, notifier)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "9 New Street", updated.ShippingAddress())
	assert.Equal(t, "ring twice", updated.Notes())
	assert.True(t, updated.Total().IsEqual(totalBefore))
	assert.Zero(t, notifier.statusChanged)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	status := order.Confirmed
	cmd, err := commands.NewUpdateOrderCommand(orderID, &status, nil, nil)
	require.NoError(t, err)

	repo := new(MockUpdateOrderRepository)
	uow := new(MockUpdateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).
			Return(nil, errors.New("order not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUpdateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, new(stubNotifier))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
