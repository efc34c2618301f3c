package notifier_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"commerce/internal/adapters/out/notifier"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetAllPending(ctx context.Context) ([]*notification.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) HasPendingForReference(
	ctx context.Context, kind notification.Type, referenceID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, kind, referenceID)
	return args.Bool(0), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	notificationRepo *MockNotificationRepository
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository               { return nil }
func (m *MockUnitOfWork) ProductRepository() ports.ProductRepository           { return nil }
func (m *MockUnitOfWork) UserRepository() ports.UserRepository                 { return nil }
func (m *MockUnitOfWork) NotificationRepository() ports.NotificationRepository { return m.notificationRepo }

type MockUnitOfWorkFactory struct {
	mock.Mock
	uow *MockUnitOfWork
}

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	m.Called()
	return m.uow
}

func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromString("19.99")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "test product", 2, price)
	require.NoError(t, err)

	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), status, item.Subtotal(),
		"221B Baker Street", "", now, now, []order.Item{item})
	require.NoError(t, err)

	return aggregate
}

func newMocks() (*MockUnitOfWorkFactory, *MockUnitOfWork, *MockNotificationRepository) {
	repo := new(MockNotificationRepository)
	uow := &MockUnitOfWork{notificationRepo: repo}
	factory := &MockUnitOfWorkFactory{uow: uow}
	return factory, uow, repo
}

func TestOrderNotifier_NotifyOrderCreated_RecordsPendingNotification(t *testing.T) {
	factory, uow, repo := newMocks()
	aggregate := testOrder(t, order.Pending)

	var recorded *notification.Notification
	factory.On("Create").Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*notification.Notification)
		}).
		Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	sut := notifier.NewOrderNotifier(factory, slog.Default())
	sut.NotifyOrderCreated(context.Background(), aggregate)

	require.NotNil(t, recorded)
	assert.Equal(t, notification.TypeOrderCreated, recorded.Kind())
	assert.Equal(t, notification.StatusPending, recorded.Status())
	assert.True(t, recorded.RecipientID().IsEqual(aggregate.UserID()))
	assert.True(t, recorded.ReferenceID().IsEqual(aggregate.ID()))
	mock.AssertExpectationsForObjects(t, factory, uow, repo)
}

func TestOrderNotifier_NotifyOrderStatusChanged_MapsStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status order.Status
		kind   notification.Type
	}{
		{"shipped", order.Shipped, notification.TypeOrderShipped},
		{"delivered", order.Delivered, notification.TypeOrderDelivered},
		{"cancelled", order.Cancelled, notification.TypeOrderCancelled},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			factory, uow, repo := newMocks()
			aggregate := testOrder(t, test.status)

			var recorded *notification.Notification
			factory.On("Create").Once()
			uow.On("Begin", mock.Anything).Return(nil).Once()
			repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
				Run(func(args mock.Arguments) {
					recorded = args.Get(1).(*notification.Notification)
				}).
				Return(nil).Once()
			uow.On("Commit", mock.Anything).Return(nil).Once()
			uow.On("Rollback", mock.Anything).Return(nil).Once()

			sut := notifier.NewOrderNotifier(factory, slog.Default())
			sut.NotifyOrderStatusChanged(context.Background(), aggregate)

			require.NotNil(t, recorded)
			assert.Equal(t, test.kind, recorded.Kind())
		})
	}
}

func TestOrderNotifier_NotifyOrderStatusChanged_IgnoresUnmappedStatuses(t *testing.T) {
	factory, _, repo := newMocks()
	aggregate := testOrder(t, order.Confirmed)

	sut := notifier.NewOrderNotifier(factory, slog.Default())
	sut.NotifyOrderStatusChanged(context.Background(), aggregate)

	// No transaction should even start for statuses without a notification type
	factory.AssertNotCalled(t, "Create")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestOrderNotifier_StoreFailure_IsSwallowed(t *testing.T) {
	factory, uow, repo := newMocks()
	aggregate := testOrder(t, order.Pending)

	factory.On("Create").Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
		Return(assert.AnError).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	sut := notifier.NewOrderNotifier(factory, slog.Default())

	// Must not panic or propagate the failure
	sut.NotifyOrderCreated(context.Background(), aggregate)

	uow.AssertNotCalled(t, "Commit", mock.Anything)
	mock.AssertExpectationsForObjects(t, factory, uow, repo)
}
