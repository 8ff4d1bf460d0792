package commands

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// ReceiveOrderCommandHandler confirms delivery of a shipped order. The
// caller is authorized against the buyer recorded on the PAID event,
// since the order header no longer exists.
type ReceiveOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewReceiveOrderCommandHandler creates a handler for receipt confirmation.
func NewReceiveOrderCommandHandler(uowFactory UoWFactory) ReceiveOrderCommandHandler {
	return ReceiveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the ledger state and appends a RECEIVED event.
// Receipt is accepted from SHIPPED or RECEIVING, making retries
// idempotent up to the terminal event.
func (h *ReceiveOrderCommandHandler) Handle(ctx context.Context, cmd ReceiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	ledger := uow.StatusLedger()

	latest, err := ledger.Latest(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if latest.Status() == order.Canceled || latest.Status() == order.TimedOut {
		return errs.NewPreconditionFailedError("order not active", cmd.OrderID())
	}
	if !latest.Status().Receivable() {
		return errs.NewPreconditionFailedError("order not shipped", cmd.OrderID())
	}

	paid, err := ledger.LatestWithStatus(ctx, cmd.OrderID(), order.Paid)
	if err != nil {
		return err
	}
	if paid.UserID() != cmd.BuyerID() {
		return errs.NewUnauthorizedError("order is not placed by caller")
	}

	received, err := order.NewStatusEvent(
		cmd.OrderID(), order.Received, kernel.TimestampNow(), cmd.BuyerID(), paid.StoreID())
	if err != nil {
		return err
	}

	_, err = ledger.Append(ctx, received)
	return err
}
