package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrCompactLedgerCommandIsNotConstructed = errors.New(
	"CompactLedgerCommand must be created via NewCompactLedgerCommand constructor",
)

// CompactLedgerCommand triggers removal of duplicate terminal events from
// the status ledger. Racing lazy-timeout observers can append TIMED_OUT
// more than once; the duplicates never change any order's observable
// state, they only pad the ledger.
type CompactLedgerCommand struct {
	guard guard.ConstructorGuard
}

// NewCompactLedgerCommand creates a command to compact the status ledger.
// This is a parameterless command processing the whole ledger.
func NewCompactLedgerCommand() CompactLedgerCommand {
	return CompactLedgerCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CompactLedgerCommand) Validate() error {
	return c.guard.Validate(ErrCompactLedgerCommandIsNotConstructed)
}
