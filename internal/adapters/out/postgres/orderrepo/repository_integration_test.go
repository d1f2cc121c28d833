package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ustabar/internal/adapters/out/postgres/orderrepo"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createSearchingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createSearchingOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.True(retrieved.CustomerID().IsEqual(original.CustomerID()))
	suite.Nil(retrieved.Worker())
	suite.Equal(original.ServiceCategory(), retrieved.ServiceCategory())
	suite.Equal(original.Price(), retrieved.Price())
	suite.Equal(original.Duration(), retrieved.Duration())
	suite.Equal(original.Comment(), retrieved.Comment())
	suite.Equal(original.Address(), retrieved.Address())
	suite.Equal(original.Photos(), retrieved.Photos())
	suite.InDelta(original.Location().Latitude(), retrieved.Location().Latitude(), 1e-9)
	suite.InDelta(original.Location().Longitude(), retrieved.Location().Longitude(), 1e-9)
	suite.Equal(order.Searching, retrieved.Status())
	suite.WithinDuration(original.CreatedAt(), retrieved.CreatedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateInStatus_MatchingStatus_AppliesTransition() {
	ctx := context.Background()

	testOrder := suite.createSearchingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	workerID := kernel.NewUUID()
	proposed := 2500
	suite.Require().NoError(testOrder.Accept(testOrder.CustomerID(), workerID, &proposed))

	err := suite.repository.UpdateInStatus(ctx, testOrder, order.Searching)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Require().NotNil(retrieved.Worker())
	suite.True(retrieved.Worker().IsEqual(workerID))
	suite.Equal(2500, retrieved.Price())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateInStatus_StatusMoved_ReturnsConflict() {
	ctx := context.Background()

	testOrder := suite.createSearchingOrder()
	customerID := testOrder.CustomerID()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// A competing transition loaded the same Searching snapshot.
	stale, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// First transition wins.
	suite.Require().NoError(testOrder.Accept(customerID, kernel.NewUUID(), nil))
	suite.Require().NoError(suite.repository.UpdateInStatus(ctx, testOrder, order.Searching))

	// The loser still believes the order is Searching.
	suite.Require().NoError(stale.Cancel(customerID))
	err = suite.repository.UpdateInStatus(ctx, stale, order.Searching)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	// The winner's state is untouched.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_ReturnsOwnOrdersNewestFirst() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	otherCustomerID := kernel.NewUUID()

	older := suite.restoreOrderForCustomer(customerID, time.Now().UTC().Add(-2*time.Hour))
	newer := suite.restoreOrderForCustomer(customerID, time.Now().UTC().Add(-1*time.Hour))
	foreign := suite.restoreOrderForCustomer(otherCustomerID, time.Now().UTC())

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	orders, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID().IsEqual(newer.ID()))
	suite.True(orders[1].ID().IsEqual(older.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_NoOrders_ReturnsEmptySlice() {
	orders, err := suite.repository.GetAllByCustomer(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Empty(orders)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) createSearchingOrder() *order.Order {
	location, err := kernel.NewGeoPoint(41.2995, 69.2401)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"plumbing",
		1500,
		"2 hours",
		"leaking sink",
		"12 Navoi street",
		[]string{"orders/x/1.jpg"},
		location,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) restoreOrderForCustomer(
	customerID kernel.UUID, createdAt time.Time,
) *order.Order {
	location, err := kernel.NewGeoPoint(41.3, 69.25)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, nil, "plumbing", 1000, "1 hour", "", "addr",
		nil, location, order.Searching, createdAt)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
