package commands

import (
	"context"

	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// AddStockCommandHandler handles stock level increases via a single
// unconditional atomic increment.
type AddStockCommandHandler struct {
	uowFactory    CatalogUoWFactory
	tokenProvider ports.TokenProvider
}

// NewAddStockCommandHandler creates a handler for stock increases.
func NewAddStockCommandHandler(
	uowFactory CatalogUoWFactory,
	tokenProvider ports.TokenProvider,
) AddStockCommandHandler {
	return AddStockCommandHandler{
		uowFactory:    uowFactory,
		tokenProvider: tokenProvider,
	}
}

// Handle verifies the owner's session and store ownership, then
// increments the stock level of the listed book.
func (h *AddStockCommandHandler) Handle(ctx context.Context, cmd AddStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	owner, err := uow.AccountRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = verifySession(owner, cmd.Token(), h.tokenProvider); err != nil {
		return err
	}

	listedIn, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	if !listedIn.IsOwnedBy(cmd.OwnerID()) {
		return errs.NewUnauthorizedError("store is not owned by caller")
	}

	return uow.InventoryRepository().AddStock(ctx, cmd.StoreID(), cmd.BookID(), cmd.Count())
}
