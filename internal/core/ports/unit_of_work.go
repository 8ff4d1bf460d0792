package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request, isolating
// concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork provides repositories bound to an optional storage
// transaction.
//
// placeOrder runs inside Begin/Commit so the header, lines and CREATED
// event land all-or-nothing. The settlement path deliberately does NOT
// open a transaction: each money/stock step is an individually atomic
// guarded update, ordered so resource consumption commits before the
// order is closed. Repositories obtained without Begin operate directly
// on the base connection.
type UnitOfWork interface {
	// Begin starts a storage transaction. Safe to call once per unit.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction.
	// Returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	// AccountRepository returns an AccountRepository bound to the current
	// transaction, or to the base connection when none is active.
	AccountRepository() AccountRepository

	// StoreRepository returns a StoreRepository bound likewise.
	StoreRepository() StoreRepository

	// InventoryRepository returns an InventoryRepository bound likewise.
	InventoryRepository() InventoryRepository

	// OrderRepository returns an OrderRepository bound likewise.
	OrderRepository() OrderRepository

	// StatusLedger returns a StatusLedger bound likewise.
	StatusLedger() StatusLedger
}
