// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bookstore/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest composite their operation needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// StoreRepoFactory provides access to the store repository.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// InventoryRepoFactory provides access to the inventory repository.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// OrderRepoFactory provides access to the order repository.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusLedgerFactory provides access to the order status ledger.
	StatusLedgerFactory interface {
		StatusLedger() ports.StatusLedger
	}

	// AccountUoW manages account-only operations: registration, sessions,
	// credential changes and fund top-ups.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// CatalogUoW manages seller-side catalog operations: store creation
	// and inventory listing. Includes the account repository for session
	// token checks.
	CatalogUoW interface {
		TxManager
		AccountRepoFactory
		StoreRepoFactory
		InventoryRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW spans every repository the order lifecycle touches. Lifecycle
	// handlers decide per operation whether to open a transaction:
	// order placement does, settlement deliberately does not.
	UoW interface {
		TxManager
		AccountRepoFactory
		StoreRepoFactory
		InventoryRepoFactory
		OrderRepoFactory
		StatusLedgerFactory
	}

	// UoWFactory creates new unit of work instances for lifecycle operations.
	UoWFactory interface {
		Create() UoW
	}
)
