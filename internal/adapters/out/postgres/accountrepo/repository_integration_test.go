package accountrepo_test

import (
	"context"
	"testing"
	"time"

	"ustabar/internal/adapters/out/postgres/accountrepo"
	"ustabar/internal/core/domain/model/account"
	"ustabar/internal/core/domain/model/kernel"
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

// AccountRepositoryIntegrationTestSuite verifies account persistence
// behavior against a real PostgreSQL instance.
type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *accountrepo.GormAccountRepository
	tracker    *MockAggregateTracker
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&accountrepo.AccountDTO{}))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = accountrepo.NewGormAccountRepository(suite.db, suite.tracker)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_ValidAccount_Success() {
	ctx := context.Background()

	worker := suite.createWorker(111222333)
	suite.tracker.On("TrackAggregate", worker.ID(), worker).Once()

	err := suite.repository.Add(ctx, worker)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&accountrepo.AccountDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_DuplicateTgID_Fails() {
	ctx := context.Background()

	first := suite.createWorker(42)
	second := suite.createWorker(42)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByTgID_ExistingAccount_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createWorker(999888777)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByTgID(ctx, 999888777)
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.Equal(int64(999888777), retrieved.TgID())
	suite.Equal(original.Username(), retrieved.Username())
	suite.Equal(original.Name(), retrieved.Name())
	suite.Equal(account.RoleWorker, retrieved.Role())
	suite.Equal("electrics", retrieved.ServiceCategory())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByTgID_UnknownTgID_ReturnsNotFoundError() {
	retrieved, err := suite.repository.GetByTgID(context.Background(), 123)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_ExistingAccount_PersistsProfileChanges() {
	ctx := context.Background()

	worker := suite.createWorker(555)
	suite.tracker.On("TrackAggregate", worker.ID(), worker).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, worker))

	suite.Require().NoError(worker.UpdateProfile("new_username", "New Name"))
	suite.Require().NoError(suite.repository.Update(ctx, worker))

	retrieved, err := suite.repository.Get(ctx, worker.ID())
	suite.Require().NoError(err)
	suite.Equal("new_username", retrieved.Username())
	suite.Equal("New Name", retrieved.Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_NonExistentAccount_ReturnsError() {
	err := suite.repository.Update(context.Background(), suite.createWorker(777))

	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) createWorker(tgID int64) *account.Account {
	worker, err := account.NewAccount(
		kernel.NewUUID(), tgID, "test_worker", "Test Worker", account.RoleWorker, "electrics")
	suite.Require().NoError(err)
	return worker
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
