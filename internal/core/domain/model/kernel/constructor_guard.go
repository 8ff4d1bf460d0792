package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and aggregates are only created
// through their designated constructor functions. Embedding a guard in a
// struct lets Validate detect zero-value instances that bypassed the
// constructor and therefore skipped invariant checks.
//
// Example:
//
//	var ErrAccountNotConstructed = errors.New("Account must be created via NewAccount")
//
//	type Account struct {
//	    id      string
//	    balance Money
//	    guard   ConstructorGuard
//	}
//
//	func NewAccount(id string) (*Account, error) {
//	    if id == "" {
//	        return nil, errors.New("id is required")
//	    }
//	    return &Account{id: id, guard: NewConstructorGuard()}, nil
//	}
//
//	func (a *Account) Validate() error {
//	    return a.guard.Validate(ErrAccountNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard marking an object as
// properly constructed. Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built via its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
