package commands

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// ShipOrderCommandHandler marks a settled order shipped. The order
// header is gone by now, so the store and buyer are recovered from the
// most recent PAID event.
type ShipOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewShipOrderCommandHandler creates a handler for shipping.
func NewShipOrderCommandHandler(uowFactory UoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the caller owns the store the order was paid against
// and appends a SHIPPED event. Shipping an already-terminal order is a
// no-op success; shipping from any latest state other than PAID or
// SHIPPED is rejected.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	ledger := uow.StatusLedger()

	paid, err := ledger.LatestWithStatus(ctx, cmd.OrderID(), order.Paid)
	if err != nil {
		return err
	}

	shipFrom, err := uow.StoreRepository().Get(ctx, paid.StoreID())
	if err != nil {
		return err
	}
	if !shipFrom.IsOwnedBy(cmd.CallerID()) {
		return errs.NewUnauthorizedError("store is not owned by caller")
	}

	latest, err := ledger.Latest(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if latest.Status().IsTerminal() {
		return nil
	}
	if !latest.Status().Shippable() {
		return errs.NewUnauthorizedError("order is not in a shippable state")
	}

	// The event keeps the buyer from the PAID event as acting user so
	// the buyer's order history stays complete.
	shipped, err := order.NewStatusEvent(
		cmd.OrderID(), order.Shipped, kernel.TimestampNow(), paid.UserID(), paid.StoreID())
	if err != nil {
		return err
	}

	_, err = ledger.Append(ctx, shipped)
	return err
}
