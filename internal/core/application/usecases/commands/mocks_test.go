package commands_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/account"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/store"
	"bookstore/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, id string, ownerID string) *store.Store {
	t.Helper()
	owned, err := store.NewStore(id, ownerID)
	require.NoError(t, err)
	return owned
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id string) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateSession(ctx context.Context, id string, token string, terminal string) error {
	args := m.Called(ctx, id, token, terminal)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateCredential(
	ctx context.Context, id string, password string, token string, terminal string,
) error {
	args := m.Called(ctx, id, password, token, terminal)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountRepository) Credit(ctx context.Context, id string, amount kernel.Money) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockAccountRepository) Debit(ctx context.Context, id string, amount kernel.Money) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id string) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, l *store.InventoryLine) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, storeID string, bookID string) (*store.InventoryLine, error) {
	args := m.Called(ctx, storeID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.InventoryLine), args.Error(1)
}

func (m *MockInventoryRepository) AddStock(ctx context.Context, storeID string, bookID string, delta int64) error {
	args := m.Called(ctx, storeID, bookID, delta)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeductStock(ctx context.Context, storeID string, bookID string, count int64) error {
	args := m.Called(ctx, storeID, bookID, count)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatusLedger struct{ mock.Mock }

func (m *MockStatusLedger) Append(ctx context.Context, event order.StatusEvent) (order.StatusEvent, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(order.StatusEvent), args.Error(1)
}

func (m *MockStatusLedger) Latest(ctx context.Context, orderID string) (order.StatusEvent, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(order.StatusEvent), args.Error(1)
}

func (m *MockStatusLedger) LatestWithStatus(
	ctx context.Context, orderID string, status order.Status,
) (order.StatusEvent, error) {
	args := m.Called(ctx, orderID, status)
	return args.Get(0).(order.StatusEvent), args.Error(1)
}

func (m *MockStatusLedger) PruneDuplicateTerminal(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW implements commands.UoW across all repositories.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StatusLedger() ports.StatusLedger {
	args := m.Called()
	return args.Get(0).(ports.StatusLedger)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockTokenProvider struct{ mock.Mock }

func (m *MockTokenProvider) Issue(accountID string, terminal string, now time.Time) (string, error) {
	args := m.Called(accountID, terminal, now)
	return args.String(0), args.Error(1)
}

func (m *MockTokenProvider) Verify(accountID string, token string, now time.Time) error {
	args := m.Called(accountID, token, now)
	return args.Error(0)
}
