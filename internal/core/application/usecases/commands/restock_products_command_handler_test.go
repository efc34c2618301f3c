package commands_test

import (
	"context"
	"errors"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAlertProductRepository struct{ mock.Mock }

func (m *MockAlertProductRepository) Add(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockAlertProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockAlertProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockAlertProductRepository) GetBelowStock(ctx context.Context, threshold int) ([]*product.Product, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockAlertNotificationRepository struct{ mock.Mock }

func (m *MockAlertNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockAlertNotificationRepository) Update(_ context.Context, _ *notification.Notification) error {
	return errors.New("not implemented in mock")
}
func (m *MockAlertNotificationRepository) Get(_ context.Context, _ kernel.UUID) (*notification.Notification, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAlertNotificationRepository) GetAllPending(_ context.Context) ([]*notification.Notification, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAlertNotificationRepository) HasPendingForReference(
	ctx context.Context, kind notification.Type, referenceID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, kind, referenceID)
	return args.Bool(0), args.Error(1)
}

type MockAlertUoW struct{ mock.Mock }

func (m *MockAlertUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAlertUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAlertUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAlertUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockAlertUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockAlertUoWFactory struct{ mock.Mock }

func (m *MockAlertUoWFactory) Create() commands.AlertUoW {
	args := m.Called()
	return args.Get(0).(commands.AlertUoW)
}

func TestNewRestockProductsCommand_Validation(t *testing.T) {
	_, err := commands.NewRestockProductsCommand(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRestockProductsCommand(
		[]commands.RestockLine{{ProductID: kernel.NewUUID(), Quantity: 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestockProductsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	mouse := testProduct(t, "Mouse", "49.99", 2)

	cmd, err := commands.NewRestockProductsCommand(
		[]commands.RestockLine{{ProductID: mouse.ID(), Quantity: 30}})
	require.NoError(t, err)

	productRepo := new(MockAlertProductRepository)
	notificationRepo := new(MockAlertNotificationRepository)
	uow := new(MockAlertUoW)
	var restockRecord *notification.Notification
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		productRepo.On("Get", ctx, mouse.ID()).Return(mouse, nil).Once(),
		productRepo.On("Update", ctx, mouse).Return(nil).Once(),
		notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
			Run(func(args mock.Arguments) {
				restockRecord = args.Get(1).(*notification.Notification)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(stubCatalogCache)
	h := commands.NewRestockProductsCommandHandler(factory, cache)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, 32, updated[0].Stock())
	assert.Equal(t, 1, cache.invalidations)

	// The restock record is addressed to the operator recipient and
	// references the product
	require.NotNil(t, restockRecord)
	assert.True(t, restockRecord.RecipientID().IsEqual(notification.SystemRecipientID()))
	assert.True(t, restockRecord.ReferenceID().IsEqual(mouse.ID()))

	productRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRestockProductsCommandHandler_Handle_UnknownProductAborts(t *testing.T) {
	ctx := t.Context()
	mouse := testProduct(t, "Mouse", "49.99", 2)
	missingID := kernel.NewUUID()

	cmd, err := commands.NewRestockProductsCommand([]commands.RestockLine{
		{ProductID: mouse.ID(), Quantity: 5},
		{ProductID: missingID, Quantity: 5},
	})
	require.NoError(t, err)

	productRepo := new(MockAlertProductRepository)
	notificationRepo := new(MockAlertNotificationRepository)
	uow := new(MockAlertUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		productRepo.On("Get", ctx, mouse.ID()).Return(mouse, nil).Once(),
		productRepo.On("Update", ctx, mouse).Return(nil).Once(),
		notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
			Return(nil).Once(),
		productRepo.On("Get", ctx, missingID).
			Return(nil, errs.NewObjectNotFoundError("productId", missingID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAlertUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(stubCatalogCache)
	h := commands.NewRestockProductsCommandHandler(factory, cache)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Zero(t, cache.invalidations, "an aborted restock should not touch the cache")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
