package queries_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a noop tracker for seeding data through repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewListOrdersQuery(nil, nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_UserFilterWithPagination() {
	// Three orders for the buyer, two for somebody else
	buyerID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	for range 3 {
		suite.seedOrder(buyerID, order.Pending)
	}
	for range 2 {
		suite.seedOrder(otherID, order.Pending)
	}

	query, err := queries.NewListOrdersQuery(&buyerID, nil, 1, 2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 2, "Page window should cap the result")
	suite.Equal(int64(3), result.Total, "Total should count all matches, not the page")

	for _, o := range result.Orders {
		suite.True(o.UserID.IsEqual(buyerID), "Only the buyer's orders should be returned")
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StatusFilter() {
	buyerID := kernel.NewUUID()

	pending := suite.seedOrder(buyerID, order.Pending)
	confirmed := suite.seedOrder(buyerID, order.Confirmed)

	status := order.Confirmed
	query, err := queries.NewListOrdersQuery(nil, &status, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(int64(1), result.Total)
	suite.True(result.Orders[0].ID.IsEqual(confirmed.ID()))
	suite.False(result.Orders[0].ID.IsEqual(pending.ID()))
	suite.Equal(order.Confirmed, result.Orders[0].Status)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_CombinedFilters() {
	buyerID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	match := suite.seedOrder(buyerID, order.Confirmed)
	suite.seedOrder(buyerID, order.Pending)
	suite.seedOrder(otherID, order.Confirmed)

	status := order.Confirmed
	query, err := queries.NewListOrdersQuery(&buyerID, &status, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.True(result.Orders[0].ID.IsEqual(match.ID()))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_NewestFirst() {
	buyerID := kernel.NewUUID()

	for range 3 {
		suite.seedOrder(buyerID, order.Pending)
		time.Sleep(10 * time.Millisecond)
	}

	query, err := queries.NewListOrdersQuery(&buyerID, nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 3)

	for i := range len(result.Orders) - 1 {
		suite.False(result.Orders[i].CreatedAt.Before(result.Orders[i+1].CreatedAt),
			"Orders should be sorted newest first")
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_PageBeyondData_ReturnsEmptyPage() {
	buyerID := kernel.NewUUID()
	suite.seedOrder(buyerID, order.Pending)

	query, err := queries.NewListOrdersQuery(&buyerID, nil, 5, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Equal(int64(1), result.Total, "Total still reflects all matches")
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_AttachesLineItems() {
	buyerID := kernel.NewUUID()
	seeded := suite.seedOrder(buyerID, order.Pending)

	query, err := queries.NewListOrdersQuery(&buyerID, nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Require().Len(result.Orders[0].Items, len(seeded.Items()))

	item := result.Orders[0].Items[0]
	suite.Equal(seeded.Items()[0].ProductName(), item.ProductName)
	suite.Equal(seeded.Items()[0].Quantity(), item.Quantity)
	suite.True(item.UnitPrice.IsEqual(seeded.Items()[0].UnitPrice()))
	suite.True(item.Subtotal.IsEqual(seeded.Items()[0].Subtotal()))
	suite.True(result.Orders[0].Total.IsEqual(seeded.Total()))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	buyerID := kernel.NewUUID()
	suite.seedOrder(buyerID, order.Pending)

	query, err := queries.NewListOrdersQuery(nil, nil, 1, 20)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)
}

// seedOrder persists a single-line order for the given buyer in the given status.
func (suite *ListOrdersQueryHandlerTestSuite) seedOrder(buyerID kernel.UUID, status order.Status) *order.Order {
	price, err := kernel.MoneyFromString("19.99")
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "test product", 2, price)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	seeded, err := order.RestoreOrder(
		kernel.NewUUID(),
		buyerID,
		status,
		item.Subtotal(),
		"221B Baker Street",
		"",
		now,
		now,
		[]order.Item{item},
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), seeded)
	suite.Require().NoError(err)

	return seeded
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
