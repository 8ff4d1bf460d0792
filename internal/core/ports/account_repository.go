package ports

import (
	"context"

	"bookstore/internal/core/domain/model/account"
	"bookstore/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account
// aggregates, including the atomic balance primitives the settlement
// engine relies on. Balance mutations are single guarded storage
// operations, never read-modify-write in application code.
type AccountRepository interface {
	// Add persists a new account. Returns an ObjectAlreadyExists error
	// when the identity is taken.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by identity.
	Get(ctx context.Context, id string) (*account.Account, error)

	// UpdateSession replaces the stored session token and terminal.
	UpdateSession(ctx context.Context, id string, token string, terminal string) error

	// UpdateCredential replaces password, token and terminal together,
	// invalidating existing sessions.
	UpdateCredential(ctx context.Context, id string, password string, token string, terminal string) error

	// Delete removes the account. Returns ObjectNotFound when absent.
	Delete(ctx context.Context, id string) error

	// Credit adds amount to the balance unconditionally. Sellers always
	// accept funds. Returns ObjectNotFound when the account is absent.
	Credit(ctx context.Context, id string, amount kernel.Money) error

	// Debit subtracts amount, guarded on balance >= amount as one atomic
	// operation. Returns a PreconditionFailed ("insufficient funds")
	// error when the guard matches no row; this is the sole defense
	// against concurrent double-spend.
	Debit(ctx context.Context, id string, amount kernel.Money) error
}
