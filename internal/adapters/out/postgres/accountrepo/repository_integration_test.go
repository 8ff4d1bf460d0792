package accountrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres/accountrepo"
	"bookstore/internal/core/domain/model/account"
	"bookstore/internal/core/domain/model/kernel"
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

// AccountRepositoryIntegrationTestSuite provides integration tests for
// AccountRepository using PostgreSQL containers to verify persistence and
// the guarded balance primitives.
type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	accountRepository *accountrepo.GormAccountRepository
	tracker           *MockAggregateTracker
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&accountrepo.AccountDTO{}))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.accountRepository = accountrepo.NewGormAccountRepository(suite.db, suite.tracker)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_ValidAccount_Success() {
	ctx := context.Background()

	testAccount := suite.createTestAccount("alice")
	suite.tracker.On("TrackAggregate", testAccount.ID(), testAccount).Once()

	err := suite.accountRepository.Add(ctx, testAccount)
	suite.Require().NoError(err)

	retrieved, err := suite.accountRepository.Get(ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal("alice", retrieved.ID())
	suite.Equal(testAccount.Password(), retrieved.Password())
	suite.Equal(int64(0), retrieved.Balance().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_DuplicateIdentity_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	first := suite.createTestAccount("alice")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.accountRepository.Add(ctx, first))

	second := suite.createTestAccount("alice")
	err := suite.accountRepository.Add(ctx, second)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGet_NonExistentAccount_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.accountRepository.Get(ctx, "nobody")
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestCredit_AddsToBalance() {
	ctx := context.Background()

	suite.addAccount("alice")

	suite.Require().NoError(suite.accountRepository.Credit(ctx, "alice", suite.money(100)))
	suite.Require().NoError(suite.accountRepository.Credit(ctx, "alice", suite.money(50)))

	suite.assertBalance("alice", 150)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestCredit_NonExistentAccount_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.accountRepository.Credit(ctx, "nobody", suite.money(100))
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestDebit_SufficientBalance_Subtracts() {
	ctx := context.Background()

	suite.addAccount("alice")
	suite.Require().NoError(suite.accountRepository.Credit(ctx, "alice", suite.money(100)))

	suite.Require().NoError(suite.accountRepository.Debit(ctx, "alice", suite.money(60)))

	suite.assertBalance("alice", 40)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestDebit_ExactBalance_SucceedsToZero() {
	ctx := context.Background()

	suite.addAccount("alice")
	suite.Require().NoError(suite.accountRepository.Credit(ctx, "alice", suite.money(100)))

	suite.Require().NoError(suite.accountRepository.Debit(ctx, "alice", suite.money(100)))

	suite.assertBalance("alice", 0)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestDebit_InsufficientBalance_ReturnsPreconditionFailedError() {
	ctx := context.Background()

	suite.addAccount("alice")
	suite.Require().NoError(suite.accountRepository.Credit(ctx, "alice", suite.money(50)))

	err := suite.accountRepository.Debit(ctx, "alice", suite.money(60))
	suite.Require().Error(err)

	var preconditionErr *errs.PreconditionFailedError
	suite.Require().ErrorAs(err, &preconditionErr)

	// Balance untouched after the failed guard
	suite.assertBalance("alice", 50)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestDebit_ConcurrentDebits_NeverOverdraw() {
	ctx := context.Background()

	suite.addAccount("alice")
	suite.Require().NoError(suite.accountRepository.Credit(ctx, "alice", suite.money(100)))

	// 10 debits of 30 against a balance of 100: exactly 3 may win.
	const attempts = 10
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.accountRepository.Debit(ctx, "alice", suite.money(30))
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			var preconditionErr *errs.PreconditionFailedError
			suite.Require().ErrorAs(err, &preconditionErr)
		}
	}

	suite.Equal(3, succeeded)
	suite.assertBalance("alice", 10)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdateSession_ReplacesTokenAndTerminal() {
	ctx := context.Background()

	suite.addAccount("alice")

	suite.Require().NoError(suite.accountRepository.UpdateSession(ctx, "alice", "token-1", "terminal-1"))

	retrieved, err := suite.accountRepository.Get(ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal("token-1", retrieved.Token())
	suite.Equal("terminal-1", retrieved.Terminal())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdateCredential_ReplacesPasswordAndSession() {
	ctx := context.Background()

	suite.addAccount("alice")

	suite.Require().NoError(
		suite.accountRepository.UpdateCredential(ctx, "alice", "new-password", "token-2", "terminal-2"))

	retrieved, err := suite.accountRepository.Get(ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal("new-password", retrieved.Password())
	suite.Equal("token-2", retrieved.Token())
	suite.Equal("terminal-2", retrieved.Terminal())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestDelete_RemovesAccount() {
	ctx := context.Background()

	suite.addAccount("alice")

	suite.Require().NoError(suite.accountRepository.Delete(ctx, "alice"))

	_, err := suite.accountRepository.Get(ctx, "alice")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestDelete_NonExistentAccount_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.accountRepository.Delete(ctx, "nobody")
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestAccount creates a test account with the given identity.
func (suite *AccountRepositoryIntegrationTestSuite) createTestAccount(id string) *account.Account {
	testAccount, err := account.NewAccount(id, "password")
	suite.Require().NoError(err)
	return testAccount
}

// addAccount creates and persists an account, absorbing tracker calls.
func (suite *AccountRepositoryIntegrationTestSuite) addAccount(id string) {
	testAccount := suite.createTestAccount(id)
	suite.tracker.On("TrackAggregate", testAccount.ID(), testAccount).Once()
	suite.Require().NoError(suite.accountRepository.Add(context.Background(), testAccount))
}

func (suite *AccountRepositoryIntegrationTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

// assertBalance verifies the persisted balance for an account.
func (suite *AccountRepositoryIntegrationTestSuite) assertBalance(id string, expected int64) {
	retrieved, err := suite.accountRepository.Get(context.Background(), id)
	suite.Require().NoError(err)
	suite.Equal(expected, retrieved.Balance().Amount())
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
