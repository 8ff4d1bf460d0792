package commands

import (
	"context"
)

// CompactLedgerCommandHandler prunes duplicate terminal events, keeping
// the earliest terminal event of each (order, status) pair.
type CompactLedgerCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompactLedgerCommandHandler creates a handler for ledger compaction.
func NewCompactLedgerCommandHandler(uowFactory UoWFactory) CompactLedgerCommandHandler {
	return CompactLedgerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes duplicate terminal events and returns how many were
// pruned.
func (h *CompactLedgerCommandHandler) Handle(ctx context.Context, cmd CompactLedgerCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	return uow.StatusLedger().PruneDuplicateTerminal(ctx)
}
