package commands

import (
	"context"

	"bookstore/internal/core/domain/model/store"
	"bookstore/internal/core/ports"
)

// CreateStoreCommandHandler handles store creation. A store is owned by
// exactly one account and is immutable after creation.
type CreateStoreCommandHandler struct {
	uowFactory    CatalogUoWFactory
	tokenProvider ports.TokenProvider
}

// NewCreateStoreCommandHandler creates a handler for store creation.
func NewCreateStoreCommandHandler(
	uowFactory CatalogUoWFactory,
	tokenProvider ports.TokenProvider,
) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory:    uowFactory,
		tokenProvider: tokenProvider,
	}
}

// Handle verifies the owner's session and opens the store. A taken store
// identity fails with a Conflict error.
func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) error {
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

	newStore, err := store.NewStore(cmd.StoreID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	return uow.StoreRepository().Add(ctx, newStore)
}
