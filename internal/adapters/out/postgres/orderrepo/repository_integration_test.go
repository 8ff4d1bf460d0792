package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers. The order tables are
// transient: settlement deletes rows, so Delete must be idempotent.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	orderRepository *orderrepo.GormOrderRepository
	tracker         *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.orderRepository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsHeaderAndLines() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertHeaderCount(1)
	suite.assertLineCount(2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrder_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, testOrder))

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, original))

	retrieved, err := suite.orderRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.BuyerID(), retrieved.BuyerID())
	suite.Equal(original.StoreID(), retrieved.StoreID())
	suite.Equal(original.CreatedAt().Millis(), retrieved.CreatedAt().Millis())
	suite.Equal(original.Total().Amount(), retrieved.Total().Amount())
	suite.Len(retrieved.Lines(), len(original.Lines()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.orderRepository.Get(ctx, "missing")
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesHeaderAndLines() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, testOrder))

	err := suite.orderRepository.Delete(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.assertHeaderCount(0)
	suite.assertLineCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_AlreadyDeleted_IsIdempotent() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, testOrder))

	suite.Require().NoError(suite.orderRepository.Delete(ctx, testOrder.ID()))

	// Settlement retries delete the same order again; no rows, no error.
	suite.Require().NoError(suite.orderRepository.Delete(ctx, testOrder.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NeverExisted_IsIdempotent() {
	ctx := context.Background()

	suite.Require().NoError(suite.orderRepository.Delete(ctx, "missing"))
}

// createTestOrder builds a two-line order for buyer-1 at store-1.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	price1, err := kernel.NewMoney(1200)
	suite.Require().NoError(err)
	line1, err := order.NewLine("book-1", 2, price1)
	suite.Require().NoError(err)

	price2, err := kernel.NewMoney(800)
	suite.Require().NoError(err)
	line2, err := order.NewLine("book-2", 1, price2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder("buyer-1", "store-1", []order.Line{line1, line2}, kernel.TimestampNow())
	suite.Require().NoError(err)

	return testOrder
}

// assertHeaderCount verifies the number of order headers in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertHeaderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

// assertLineCount verifies the number of order lines in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertLineCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
