package commands

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles order creation. Preconditions are
// checked fail-fast in a fixed sequence: buyer exists, store exists,
// every item is listed with sufficient stock. Stock is observed, not
// reserved: nothing stops another order from consuming it before this
// one is paid. Overselling is resolved by the conditional decrement at
// settlement time (optimistic, no-reservation policy).
//
// The header, lines and CREATED event are written inside one transaction
// so order creation is all-or-nothing for the caller.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order creation.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the new order
// identity. All records carry the same creation timestamp.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.AccountRepository().Get(ctx, cmd.BuyerID()); err != nil {
		return "", err
	}

	if _, err := uow.StoreRepository().Get(ctx, cmd.StoreID()); err != nil {
		return "", err
	}

	inventoryRepo := uow.InventoryRepository()
	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		listed, err := inventoryRepo.Get(ctx, cmd.StoreID(), item.BookID)
		if err != nil {
			return "", err
		}
		if !listed.HasStockFor(item.Count) {
			return "", errs.NewPreconditionFailedError("stock level low", item.BookID)
		}

		line, err := order.NewLine(item.BookID, item.Count, listed.UnitPrice())
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}

	createdAt := kernel.TimestampNow()
	newOrder, err := order.NewOrder(cmd.BuyerID(), cmd.StoreID(), lines, createdAt)
	if err != nil {
		return "", err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return "", err
	}

	created, err := order.NewStatusEvent(newOrder.ID(), order.Created, createdAt, cmd.BuyerID(), cmd.StoreID())
	if err != nil {
		return "", err
	}
	if _, err = uow.StatusLedger().Append(ctx, created); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return newOrder.ID(), nil
}
