package order

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Status is the lifecycle state of an order as recorded in the status
// ledger. The ledger is append-only: an order's current state is the
// status of its latest event, never a mutable field.
//
// State transitions:
//
//	Created ──(pay)──────────> Paid ──(ship)──> Shipped ──(receive)──> Received
//	   │  │
//	   │  └─(cancel by buyer)─> Canceled
//	   └────(timeout, lazy)───> TimedOut
//
// Canceled, TimedOut and Received are terminal. Paid orders cannot be
// canceled. Receiving is accepted as an alias of Shipped on the receive
// path for compatibility with ledgers written by older deployments.
type Status string

const (
	// Created is appended when an order is placed. Stock is checked but
	// not reserved at this point.
	Created Status = "created"

	// Paid is appended once funds and stock have been committed.
	Paid Status = "paid"

	// Shipped is appended by the store owner after payment.
	Shipped Status = "shipped"

	// Receiving is a legacy in-transit state treated like Shipped when
	// the buyer confirms receipt.
	Receiving Status = "receiving"

	// Received is the terminal state of a completed order.
	Received Status = "received"

	// Canceled is the terminal state of an order the buyer withdrew
	// before payment.
	Canceled Status = "canceled"

	// TimedOut is the terminal state of an order whose payment window
	// elapsed. Appended lazily when expiry is observed.
	TimedOut Status = "timed_out"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Created:   {},
		Paid:      {},
		Shipped:   {},
		Receiving: {},
		Received:  {},
		Canceled:  {},
		TimedOut:  {},
	}
}

// Validate checks the status is one of the known ledger states.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid status", string(s)),
		)
	}
	return nil
}

// String returns the ledger representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
// A duplicate terminal append (racing timeout observers) does not change
// user-visible behavior, so all terminal states are treated as equivalent
// once observed as latest.
func (s Status) IsTerminal() bool {
	return s == Canceled || s == TimedOut || s == Received
}

// Payable reports whether an order whose latest status is s may be paid.
func (s Status) Payable() bool {
	return s == Created
}

// Shippable reports whether ship may append a Shipped event: the latest
// status must be Paid, or Shipped for an idempotent re-issue.
func (s Status) Shippable() bool {
	return s == Paid || s == Shipped
}

// Receivable reports whether receive may append a Received event.
func (s Status) Receivable() bool {
	return s == Shipped || s == Receiving
}
