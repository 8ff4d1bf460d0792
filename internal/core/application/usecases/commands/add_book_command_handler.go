package commands

import (
	"context"

	"bookstore/internal/core/domain/model/store"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// AddBookCommandHandler handles listing a book in a store.
type AddBookCommandHandler struct {
	uowFactory    CatalogUoWFactory
	tokenProvider ports.TokenProvider
}

// NewAddBookCommandHandler creates a handler for book listing.
func NewAddBookCommandHandler(
	uowFactory CatalogUoWFactory,
	tokenProvider ports.TokenProvider,
) AddBookCommandHandler {
	return AddBookCommandHandler{
		uowFactory:    uowFactory,
		tokenProvider: tokenProvider,
	}
}

// Handle verifies the owner's session and store ownership, then lists
// the book. A taken (store, book) pair fails with a Conflict error.
func (h *AddBookCommandHandler) Handle(ctx context.Context, cmd AddBookCommand) error {
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

	line, err := store.NewInventoryLine(cmd.StoreID(), cmd.BookID(), cmd.BookInfo(), cmd.Stock())
	if err != nil {
		return err
	}

	return uow.InventoryRepository().Add(ctx, line)
}
