package account

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

	// ErrAccountIDIsRequired is returned when the account identity is empty.
	ErrAccountIDIsRequired = errors.New("account id is required")

	// ErrPasswordIsRequired is returned when the credential is empty.
	ErrPasswordIsRequired = errors.New("password is required")
)

// Account is the aggregate holding a user's credential, balance and current
// session. The balance invariant (never negative) is not enforced here by
// read-modify-write: every mutation goes through the repository's guarded
// atomic credit/debit so it stays safe under concurrent settlement.
//
// Invariants:
//   - Identity and credential are non-empty
//   - Balance is non-negative (enforced by construction and by the
//     conditional debit in storage)
//   - Can only be created through NewAccount or RestoreAccount
type Account struct {
	id       string
	password string
	balance  kernel.Money
	token    string
	terminal string

	guard kernel.ConstructorGuard
}

// NewAccount creates a fresh account with a zero balance and no session.
// This is the registration path; the session token is attached separately
// once issued.
func NewAccount(id string, password string) (*Account, error) {
	if id == "" {
		return nil, ErrAccountIDIsRequired
	}
	if password == "" {
		return nil, ErrPasswordIsRequired
	}

	return &Account{
		id:       id,
		password: password,
		balance:  kernel.ZeroMoney(),
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(id string, password string, balance kernel.Money, token string, terminal string) (*Account, error) {
	acc, err := NewAccount(id, password)
	if err != nil {
		return nil, err
	}

	acc.balance = balance
	acc.token = token
	acc.terminal = terminal
	return acc, nil
}

// ID returns the account identity.
func (a *Account) ID() string {
	return a.id
}

// Password returns the stored credential.
func (a *Account) Password() string {
	return a.password
}

// Balance returns the last observed balance. Under concurrency this is a
// snapshot; authoritative mutations happen in storage.
func (a *Account) Balance() kernel.Money {
	return a.balance
}

// Token returns the current session token.
func (a *Account) Token() string {
	return a.token
}

// Terminal returns the terminal the current session was issued for.
func (a *Account) Terminal() string {
	return a.terminal
}

// Authenticate compares the supplied credential against the stored one.
// Returns an Unauthorized error on mismatch; the caller must not
// distinguish a wrong password from a missing account in its reply.
func (a *Account) Authenticate(password string) error {
	if password != a.password {
		return errs.NewUnauthorizedErrorWithCause(
			"password mismatch",
			fmt.Errorf("account %s", a.id),
		)
	}
	return nil
}

// AttachSession records a newly issued session token and terminal.
func (a *Account) AttachSession(token string, terminal string) {
	a.token = token
	a.terminal = terminal
}

// ChangePassword replaces the credential. Existing sessions are expected
// to be invalidated by the caller issuing a fresh token.
func (a *Account) ChangePassword(newPassword string) error {
	if newPassword == "" {
		return ErrPasswordIsRequired
	}
	a.password = newPassword
	return nil
}

// Validate ensures the account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}
