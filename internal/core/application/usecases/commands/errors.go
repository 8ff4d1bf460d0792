package commands

import "errors"

// Field validation errors shared by command constructors.
var (
	ErrAccountIDIsRequired = errors.New("account id is required")
	ErrPasswordIsRequired  = errors.New("password is required")
	ErrTokenIsRequired     = errors.New("token is required")
	ErrTerminalIsRequired  = errors.New("terminal is required")
	ErrStoreIDIsRequired   = errors.New("store id is required")
	ErrBookIDIsRequired    = errors.New("book id is required")
	ErrOrderIDIsRequired   = errors.New("order id is required")
	ErrItemsAreRequired    = errors.New("at least one order item is required")
	ErrAmountIsInvalid     = errors.New("amount must be greater than 0")
	ErrStockIsInvalid      = errors.New("stock must not be negative")
	ErrCountIsInvalid      = errors.New("count must be greater than 0")
	ErrTimeoutIsInvalid    = errors.New("timeout must be greater than 0")
)
